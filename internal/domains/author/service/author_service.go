package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/apperror"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

// NewAuthorService creates the author business-logic layer.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) ListAll(ctx context.Context) ([]author.AuthorDTO, error) {
	log.Debug().Msg("Fetching all authors")

	entities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return toDTOs(entities), nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.AuthorDTO, error) {
	log.Debug().Str("author_id", id.String()).Msg("Fetching author by id")

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			log.Error().Str("author_id", id.String()).Msg("Author not found")
		}
		return nil, err
	}

	return a.ToDTO(), nil
}

func (s *authorService) Create(ctx context.Context, dto author.AuthorDTO) (*author.AuthorDTO, error) {
	log.Info().Str("name", dto.Name).Msg("Creating new author")

	// Names are stored upper-cased; exact-match lookups rely on it.
	dto.Name = strings.ToUpper(dto.Name)

	created, err := s.repo.Create(ctx, dto.ToEntity())
	if err != nil {
		return nil, err
	}

	log.Info().Str("author_id", created.ID.String()).Msg("Successfully created new author")
	return created.ToDTO(), nil
}

func (s *authorService) UpdateByID(ctx context.Context, id uuid.UUID, dto author.AuthorDTO) (*author.AuthorDTO, error) {
	log.Info().Str("author_id", id.String()).Msg("Updating author by id")

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Error().Str("author_id", id.String()).Msg("Author not found")
		return nil, apperror.NewNotFound("Author", id)
	}

	// Full replacement: the path id wins over whatever the payload carried.
	entity := dto.ToEntity()
	entity.ID = id
	entity.Name = strings.ToUpper(entity.Name)

	updated, err := s.repo.Update(ctx, entity)
	if err != nil {
		return nil, err
	}

	log.Info().Str("author_id", id.String()).Msg("Successfully updated author")
	return updated.ToDTO(), nil
}

func (s *authorService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	log.Info().Str("author_id", id.String()).Msg("Deleting author by id")

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		log.Error().Str("author_id", id.String()).Msg("Author not found")
		return apperror.NewNotFound("Author", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("author_id", id.String()).Msg("Successfully deleted author")
	return nil
}

func (s *authorService) ListByName(ctx context.Context, name string) ([]author.AuthorDTO, error) {
	log.Debug().Str("name", name).Msg("Fetching authors by name")

	// Stored names are upper-cased, so the lookup argument is normalized the
	// same way instead of doing a case-insensitive query.
	entities, err := s.repo.GetByName(ctx, strings.ToUpper(name))
	if err != nil {
		return nil, err
	}

	return toDTOs(entities), nil
}

func toDTOs(entities []author.Author) []author.AuthorDTO {
	dtos := make([]author.AuthorDTO, 0, len(entities))
	for _, e := range entities {
		dtos = append(dtos, *e.ToDTO())
	}
	return dtos
}
