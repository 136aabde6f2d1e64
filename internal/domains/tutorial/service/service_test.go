package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	categorymodel "circuithub-backend/internal/domains/category/model"
	"circuithub-backend/internal/domains/tutorial/model"
)

// ========================================
// FAKES
// ========================================

type fakeTutorialRepo struct {
	tutorials []*model.Tutorial
}

func (f *fakeTutorialRepo) find(id uuid.UUID) *model.Tutorial {
	for _, t := range f.tutorials {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (f *fakeTutorialRepo) Create(ctx context.Context, tutorial *model.Tutorial) (*model.Tutorial, error) {
	for _, t := range f.tutorials {
		if t.Slug == tutorial.Slug {
			return nil, model.ErrSlugConflict
		}
	}
	clone := *tutorial
	f.tutorials = append(f.tutorials, &clone)
	out := clone
	return &out, nil
}

func (f *fakeTutorialRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Tutorial, error) {
	if t := f.find(id); t != nil {
		clone := *t
		return &clone, nil
	}
	return nil, model.ErrTutorialNotFound
}

func (f *fakeTutorialRepo) GetBySlug(ctx context.Context, slug string) (*model.Tutorial, error) {
	for _, t := range f.tutorials {
		if t.Slug == slug {
			clone := *t
			return &clone, nil
		}
	}
	return nil, model.ErrTutorialNotFound
}

func (f *fakeTutorialRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, t := range f.tutorials {
		if t.Slug == slug && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTutorialRepo) List(ctx context.Context, categoryID *uuid.UUID, publishedOnly bool) ([]model.Tutorial, error) {
	out := make([]model.Tutorial, 0)
	for _, t := range f.tutorials {
		if categoryID != nil && t.CategoryID != *categoryID {
			continue
		}
		if publishedOnly && !t.Published {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTutorialRepo) Update(ctx context.Context, tutorial *model.Tutorial) (*model.Tutorial, error) {
	existing := f.find(tutorial.ID)
	if existing == nil {
		return nil, model.ErrTutorialNotFound
	}
	*existing = *tutorial
	clone := *tutorial
	return &clone, nil
}

func (f *fakeTutorialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, t := range f.tutorials {
		if t.ID == id {
			f.tutorials = append(f.tutorials[:i], f.tutorials[i+1:]...)
			return nil
		}
	}
	return model.ErrTutorialNotFound
}

func (f *fakeTutorialRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if t := f.find(id); t != nil {
		t.ViewCount++
		return nil
	}
	return model.ErrTutorialNotFound
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*categorymodel.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*categorymodel.Category)}
}

func (f *fakeCategoryRepo) add(name, slug string) *categorymodel.Category {
	c := &categorymodel.Category{ID: uuid.New(), Name: name, Slug: slug}
	f.categories[c.ID] = c
	return c
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *categorymodel.Category) (*categorymodel.Category, error) {
	f.categories[category.ID] = category
	return category, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*categorymodel.Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, categorymodel.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*categorymodel.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, categorymodel.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]categorymodel.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *categorymodel.Category) (*categorymodel.Category, error) {
	return category, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeCategoryRepo) Count(ctx context.Context) (int, error) { return len(f.categories), nil }

func (f *fakeCategoryRepo) CountTutorials(ctx context.Context, categoryID uuid.UUID) (int, error) {
	return 0, nil
}

// ========================================
// TESTS
// ========================================

func TestCreateTutorial(t *testing.T) {
	repo := &fakeTutorialRepo{}
	categories := newFakeCategoryRepo()
	category := categories.add("Arduino", "arduino")
	svc := NewTutorialService(repo, categories)

	created, err := svc.Create(context.Background(), model.CreateTutorialRequest{
		Title:      "Blink an LED",
		CategoryID: category.ID,
		Tags:       []string{"led", " LED ", "beginner"},
	})
	require.NoError(t, err)

	assert.Equal(t, "blink-an-led", created.Slug)
	assert.Equal(t, model.DifficultyBeginner, created.Difficulty)
	assert.Equal(t, 0, created.ViewCount)
	assert.False(t, created.Published)
	// Tags are trimmed and deduplicated but keep their order.
	assert.Equal(t, []string{"led", "beginner"}, created.Tags)
}

func TestCreateTutorialUnknownCategory(t *testing.T) {
	svc := NewTutorialService(&fakeTutorialRepo{}, newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), model.CreateTutorialRequest{
		Title:      "Blink",
		CategoryID: uuid.New(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidCategory))
}

func TestCreateTutorialSlugConflict(t *testing.T) {
	repo := &fakeTutorialRepo{}
	categories := newFakeCategoryRepo()
	category := categories.add("Arduino", "arduino")
	svc := NewTutorialService(repo, categories)

	_, err := svc.Create(context.Background(), model.CreateTutorialRequest{Title: "Blink", CategoryID: category.ID})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), model.CreateTutorialRequest{Title: "BLINK!", CategoryID: category.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrSlugConflict))
}

func TestListTutorialsPublishedOnlyByDefault(t *testing.T) {
	repo := &fakeTutorialRepo{}
	categories := newFakeCategoryRepo()
	category := categories.add("Arduino", "arduino")
	svc := NewTutorialService(repo, categories)

	_, err := svc.Create(context.Background(), model.CreateTutorialRequest{
		Title: "Published one", CategoryID: category.ID, Published: true,
	})
	require.NoError(t, err)
	draft, err := svc.Create(context.Background(), model.CreateTutorialRequest{
		Title: "Draft one", CategoryID: category.ID, Published: false,
	})
	require.NoError(t, err)

	public, err := svc.List(context.Background(), model.ListTutorialsQuery{}, false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Published one", public[0].Title)

	all, err := svc.List(context.Background(), model.ListTutorialsQuery{}, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// The draft is invisible by slug on the public surface too.
	_, err = svc.GetBySlug(context.Background(), draft.Slug, false)
	assert.True(t, errors.Is(err, model.ErrTutorialNotFound))

	got, err := svc.GetBySlug(context.Background(), draft.Slug, true)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)
}

func TestListTutorialsUnknownCategoryFilterMatchesNothing(t *testing.T) {
	repo := &fakeTutorialRepo{}
	categories := newFakeCategoryRepo()
	category := categories.add("Arduino", "arduino")
	svc := NewTutorialService(repo, categories)

	_, err := svc.Create(context.Background(), model.CreateTutorialRequest{
		Title: "Blink", CategoryID: category.ID, Published: true,
	})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), model.ListTutorialsQuery{CategorySlug: "no-such"}, false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterBySearchPreservesOrder(t *testing.T) {
	tutorials := []model.Tutorial{
		{Title: "Ohm's Law Basics", Description: "Voltage and current"},
		{Title: "Capacitors", Description: "Charge storage basics"},
		{Title: "Transistors", Description: "Switching"},
	}

	got := FilterBySearch(tutorials, "BASICS")
	require.Len(t, got, 2)
	assert.Equal(t, "Ohm's Law Basics", got[0].Title)
	assert.Equal(t, "Capacitors", got[1].Title)

	assert.Len(t, FilterBySearch(tutorials, ""), 3)
	assert.Empty(t, FilterBySearch(tutorials, "zener"))
}

func TestFilterByTagExactCaseInsensitive(t *testing.T) {
	tutorials := []model.Tutorial{
		{Title: "A", Tags: []string{"LED", "beginner"}},
		{Title: "B", Tags: []string{"led-matrix"}},
		{Title: "C", Tags: []string{"led"}},
	}

	got := FilterByTag(tutorials, "led")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "C", got[1].Title)

	assert.Len(t, FilterByTag(tutorials, ""), 3)
}

func TestUpdateTutorialPartial(t *testing.T) {
	repo := &fakeTutorialRepo{}
	categories := newFakeCategoryRepo()
	category := categories.add("Arduino", "arduino")
	svc := NewTutorialService(repo, categories)

	created, err := svc.Create(context.Background(), model.CreateTutorialRequest{
		Title: "Blink", CategoryID: category.ID,
	})
	require.NoError(t, err)

	published := true
	updated, err := svc.Update(context.Background(), created.ID, model.UpdateTutorialRequest{
		Published: &published,
	})
	require.NoError(t, err)

	assert.True(t, updated.Published)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Slug, updated.Slug)
}

func TestUpdateTutorialRejectsUnknownCategory(t *testing.T) {
	repo := &fakeTutorialRepo{}
	categories := newFakeCategoryRepo()
	category := categories.add("Arduino", "arduino")
	svc := NewTutorialService(repo, categories)

	created, err := svc.Create(context.Background(), model.CreateTutorialRequest{
		Title: "Blink", CategoryID: category.ID,
	})
	require.NoError(t, err)

	bogus := uuid.New()
	_, err = svc.Update(context.Background(), created.ID, model.UpdateTutorialRequest{CategoryID: &bogus})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidCategory))
}

func TestViewCountOnlyMovedByTrackingPath(t *testing.T) {
	repo := &fakeTutorialRepo{}
	categories := newFakeCategoryRepo()
	category := categories.add("Arduino", "arduino")
	svc := NewTutorialService(repo, categories)

	created, err := svc.Create(context.Background(), model.CreateTutorialRequest{
		Title: "Blink", CategoryID: category.ID, Published: true,
	})
	require.NoError(t, err)

	// An admin edit does not touch the counter.
	title := "Blink v2"
	updated, err := svc.Update(context.Background(), created.ID, model.UpdateTutorialRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.ViewCount)

	require.NoError(t, repo.IncrementViewCount(context.Background(), created.ID))
	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewCount)
}

func TestDeleteTutorial(t *testing.T) {
	repo := &fakeTutorialRepo{}
	categories := newFakeCategoryRepo()
	category := categories.add("Arduino", "arduino")
	svc := NewTutorialService(repo, categories)

	created, err := svc.Create(context.Background(), model.CreateTutorialRequest{
		Title: "Blink", CategoryID: category.ID, Published: true, Tags: []string{"led"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	err = svc.Delete(context.Background(), created.ID)
	assert.True(t, errors.Is(err, model.ErrTutorialNotFound))
}
