package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/apperror"
)

// fakeAuthorRepo is an in-memory author.Repository for service tests.
type fakeAuthorRepo struct {
	authors map[uuid.UUID]author.Author
	order   []uuid.UUID
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[uuid.UUID]author.Author)}
}

func (r *fakeAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	stored := *a
	stored.ID = uuid.New()
	r.authors[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return &stored, nil
}

func (r *fakeAuthorRepo) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, apperror.NewNotFound("Author", id)
	}
	return &a, nil
}

func (r *fakeAuthorRepo) GetAll(_ context.Context) ([]author.Author, error) {
	all := []author.Author{}
	for _, id := range r.order {
		all = append(all, r.authors[id])
	}
	return all, nil
}

func (r *fakeAuthorRepo) Update(_ context.Context, a *author.Author) (*author.Author, error) {
	if _, ok := r.authors[a.ID]; !ok {
		return nil, apperror.NewNotFound("Author", a.ID)
	}
	r.authors[a.ID] = *a
	return a, nil
}

func (r *fakeAuthorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.authors[id]; !ok {
		return apperror.NewNotFound("Author", id)
	}
	delete(r.authors, id)
	return nil
}

func (r *fakeAuthorRepo) GetByName(_ context.Context, name string) ([]author.Author, error) {
	matches := []author.Author{}
	for _, id := range r.order {
		if a, ok := r.authors[id]; ok && a.Name == name {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

func (r *fakeAuthorRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.authors[id]
	return ok, nil
}

func TestCreateUppercasesName(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), author.AuthorDTO{Name: "John Doe"})
	require.NoError(t, err)

	assert.Equal(t, "JOHN DOE", created.Name)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "JOHN DOE", repo.authors[created.ID].Name)
}

func TestGetByIDReturnsDTO(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), author.AuthorDTO{Name: "John Doe"})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMissingAuthorFailsWithSameMessageEverywhere(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())
	id := uuid.MustParse("7b6cfb0c-7f72-4f39-b1e5-3c6e22a0d1de")
	want := "Author not found by id:7b6cfb0c-7f72-4f39-b1e5-3c6e22a0d1de"

	_, err := svc.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, want, err.Error())
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.UpdateByID(context.Background(), id, author.AuthorDTO{Name: "John Doe"})
	require.Error(t, err)
	assert.Equal(t, want, err.Error())

	err = svc.DeleteByID(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, want, err.Error())
}

func TestUpdateByIDForcesPathIDAndNormalizes(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), author.AuthorDTO{Name: "John Doe"})
	require.NoError(t, err)

	// The payload carries a different id; the path id must win.
	updated, err := svc.UpdateByID(context.Background(), created.ID, author.AuthorDTO{
		ID:   uuid.New(),
		Name: "jane roe",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "JANE ROE", updated.Name)
	assert.Equal(t, "JANE ROE", repo.authors[created.ID].Name)
}

func TestDeleteByIDRemovesAuthor(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), author.AuthorDTO{Name: "John Doe"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestListByNameMatchesThroughNormalization(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), author.AuthorDTO{Name: "John Doe"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), author.AuthorDTO{Name: "Jane Roe"})
	require.NoError(t, err)

	// Lookup is lower-case; stored value is upper-case. Normalization on
	// both write and read paths makes the match case-insensitive.
	matches, err := svc.ListByName(context.Background(), "john doe")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, created.ID, matches[0].ID)
}

func TestListByNameNoMatchesIsEmptyNotError(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	matches, err := svc.ListByName(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestListAllPreservesStorageOrder(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	first, err := svc.Create(context.Background(), author.AuthorDTO{Name: "First"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), author.AuthorDTO{Name: "Second"})
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}
