package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/shared"
	"library-backend/internal/shared/apperror"
)

// bookService implements book.Service. It depends on the author repository
// as well, because listing by author and assignment both need author
// existence checks.
type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
}

// NewBookService creates the book business-logic layer.
func NewBookService(repo book.Repository, authorRepo author.Repository) book.Service {
	return &bookService{repo: repo, authorRepo: authorRepo}
}

func (s *bookService) ListAll(ctx context.Context) ([]book.BookDTO, error) {
	log.Debug().Msg("Fetching all books")

	entities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return toDTOs(entities), nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.BookDTO, error) {
	log.Debug().Str("book_id", id.String()).Msg("Fetching book by id")

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			log.Error().Str("book_id", id.String()).Msg("Book not found")
		}
		return nil, err
	}

	return b.ToDTO(), nil
}

func (s *bookService) Create(ctx context.Context, dto book.BookDTO) (*book.BookDTO, error) {
	log.Info().Str("title", dto.Title).Msg("Creating new book")

	// Titles are stored upper-cased, like author names. The author reference
	// in the payload, if any, is ignored: linking goes through AssignAuthor.
	dto.Title = strings.ToUpper(dto.Title)

	created, err := s.repo.Create(ctx, dto.ToEntity())
	if err != nil {
		return nil, err
	}

	log.Info().Str("book_id", created.ID.String()).Msg("Successfully created new book")
	return created.ToDTO(), nil
}

func (s *bookService) UpdateByID(ctx context.Context, id uuid.UUID, dto book.BookDTO) (*book.BookDTO, error) {
	log.Info().Str("book_id", id.String()).Msg("Updating book by id")

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Error().Str("book_id", id.String()).Msg("Book not found")
		return nil, apperror.NewNotFound("Book", id)
	}

	entity := dto.ToEntity()
	entity.ID = id
	entity.Title = strings.ToUpper(entity.Title)

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, err
	}

	log.Info().Str("book_id", id.String()).Msg("Successfully updated book")
	return updated.ToDTO(), nil
}

func (s *bookService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	log.Info().Str("book_id", id.String()).Msg("Deleting book by id")

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		log.Error().Str("book_id", id.String()).Msg("Book not found")
		return apperror.NewNotFound("Book", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("book_id", id.String()).Msg("Successfully deleted book")
	return nil
}

func (s *bookService) ListPublishedAfter(ctx context.Context, date shared.Date) ([]book.BookDTO, error) {
	log.Debug().Str("date", date.String()).Msg("Fetching books published after date")

	entities, err := s.repo.GetPublishedAfter(ctx, date)
	if err != nil {
		return nil, err
	}

	return toDTOs(entities), nil
}

func (s *bookService) ListByTitle(ctx context.Context, title string) ([]book.BookDTO, error) {
	log.Debug().Str("title", title).Msg("Fetching books by title")

	entities, err := s.repo.GetByTitle(ctx, strings.ToUpper(title))
	if err != nil {
		return nil, err
	}

	return toDTOs(entities), nil
}

func (s *bookService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.BookDTO, error) {
	log.Debug().Str("author_id", authorID.String()).Msg("Fetching books by author")

	exists, err := s.authorRepo.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Error().Str("author_id", authorID.String()).Msg("Author not found")
		return nil, apperror.NewNotFound("Author", authorID)
	}

	entities, err := s.repo.GetByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return toDTOs(entities), nil
}

func (s *bookService) AssignAuthor(ctx context.Context, bookID, authorID uuid.UUID) (*book.BookDTO, error) {
	log.Info().
		Str("book_id", bookID.String()).
		Str("author_id", authorID.String()).
		Msg("Assigning author to book")

	// The book lookup comes first: when both records are missing, the
	// surfaced error must name the book.
	if _, err := s.repo.GetByID(ctx, bookID); err != nil {
		if apperror.IsNotFound(err) {
			log.Error().Str("book_id", bookID.String()).Msg("Book not found")
		}
		return nil, err
	}

	foundAuthor, err := s.authorRepo.GetByID(ctx, authorID)
	if err != nil {
		if apperror.IsNotFound(err) {
			log.Error().Str("author_id", authorID.String()).Msg("Author not found")
		}
		return nil, err
	}

	linked, err := s.repo.SetAuthor(ctx, bookID, foundAuthor.ID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("book_id", bookID.String()).
		Str("author_id", authorID.String()).
		Msg("Successfully assigned author to book")
	return linked.ToDTO(), nil
}

func toDTOs(entities []book.Book) []book.BookDTO {
	dtos := make([]book.BookDTO, 0, len(entities))
	for _, e := range entities {
		dtos = append(dtos, *e.ToDTO())
	}
	return dtos
}
