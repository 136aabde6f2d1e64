package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuithub-backend/internal/domains/category/model"
)

// fakeRepo is an in-memory store standing in for Postgres.
type fakeRepo struct {
	categories    map[uuid.UUID]*model.Category
	tutorialCount map[uuid.UUID]int

	// When set, Create fails with the storage-level uniqueness error even
	// though the pre-check saw no duplicate, mimicking a concurrent insert
	// winning the race.
	conflictOnCreate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		categories:    make(map[uuid.UUID]*model.Category),
		tutorialCount: make(map[uuid.UUID]int),
	}
}

func (f *fakeRepo) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if f.conflictOnCreate {
		return nil, model.ErrSlugConflict
	}
	for _, c := range f.categories {
		if c.Slug == category.Slug {
			return nil, model.ErrSlugConflict
		}
	}
	clone := *category
	f.categories[category.ID] = &clone
	return &clone, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, model.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			clone := *c
			return &clone, nil
		}
	}
	return nil, model.ErrCategoryNotFound
}

func (f *fakeRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for id, c := range f.categories {
		if c.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) List(ctx context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	if _, ok := f.categories[category.ID]; !ok {
		return nil, model.ErrCategoryNotFound
	}
	for id, c := range f.categories {
		if c.Slug == category.Slug && id != category.ID {
			return nil, model.ErrSlugConflict
		}
	}
	clone := *category
	f.categories[category.ID] = &clone
	return &clone, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return model.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) {
	return len(f.categories), nil
}

func (f *fakeRepo) CountTutorials(ctx context.Context, categoryID uuid.UUID) (int, error) {
	return f.tutorialCount[categoryID], nil
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Arduino Projects"})
	require.NoError(t, err)

	assert.Equal(t, "arduino-projects", created.Slug)
	assert.Equal(t, model.DefaultColor, created.Color)
	assert.Equal(t, model.DefaultIcon, created.Icon)
	assert.Equal(t, 0, created.OrderIndex)
}

func TestCreateCategoryExplicitSlugWins(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), model.CreateCategoryRequest{
		Name: "Arduino Projects",
		Slug: "arduino",
	})
	require.NoError(t, err)
	assert.Equal(t, "arduino", created.Slug)
}

func TestCreateCategorySlugConflict(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Arduino Projects"})
	require.NoError(t, err)

	// A different name producing the same derived slug must conflict.
	_, err = svc.Create(context.Background(), model.CreateCategoryRequest{Name: "arduino  PROJECTS"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrSlugConflict))

	var catErr *model.CategoryError
	require.True(t, errors.As(err, &catErr))
	assert.Equal(t, model.ErrCodeSlugConflict, catErr.Code)
}

func TestCreateCategoryStorageConflictTranslated(t *testing.T) {
	// Simulates the concurrent-create race: the pre-check passes but the
	// store's unique constraint rejects the insert. The caller must see
	// the same conflict error either way.
	repo := newFakeRepo()
	repo.conflictOnCreate = true
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Power", Slug: "power"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrSlugConflict))
}

func TestCreateCategoryOrderIndexDefaultsToCount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "First"})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Second"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.OrderIndex)
}

func TestCreateCategoryRejectsUnusableName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "!!!"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestUpdateCategorySlugCollision(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	first, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Sensors"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Power"})
	require.NoError(t, err)

	slug := "power"
	_, err = svc.Update(context.Background(), first.ID, model.UpdateCategoryRequest{Slug: &slug})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrSlugConflict))
}

func TestUpdateCategoryPartial(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Sensors"})
	require.NoError(t, err)

	color := "purple"
	updated, err := svc.Update(context.Background(), created.ID, model.UpdateCategoryRequest{Color: &color})
	require.NoError(t, err)

	assert.Equal(t, "purple", updated.Color)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Slug, updated.Slug)
}

func TestDeleteCategoryBlockedByTutorials(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Sensors"})
	require.NoError(t, err)
	repo.tutorialCount[created.ID] = 3

	err = svc.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrHasTutorials))

	// Still there.
	_, err = svc.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
}

func TestDeleteCategoryEmpty(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Sensors"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.True(t, errors.Is(err, model.ErrCategoryNotFound))
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(newFakeRepo())

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrCategoryNotFound))
}

func TestGetBySlugNormalizesInput(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), model.CreateCategoryRequest{Name: "Sensors"})
	require.NoError(t, err)

	got, err := svc.GetBySlug(context.Background(), "  SENSORS  ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
