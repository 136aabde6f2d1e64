package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circuithub-backend/internal/domains/comment/model"
	tutorialmodel "circuithub-backend/internal/domains/tutorial/model"
)

// ========================================
// FAKES
// ========================================

type fakeCommentRepo struct {
	comments []*model.Comment
	// tutorials lets ListWithTutorial resolve titles/slugs.
	tutorials map[uuid.UUID]*tutorialmodel.Tutorial
}

func newFakeCommentRepo(tutorials map[uuid.UUID]*tutorialmodel.Tutorial) *fakeCommentRepo {
	return &fakeCommentRepo{tutorials: tutorials}
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	clone := *comment
	f.comments = append(f.comments, &clone)
	out := clone
	return &out, nil
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, model.ErrCommentNotFound
}

func (f *fakeCommentRepo) ListByTutorial(ctx context.Context, tutorialID uuid.UUID, approvedOnly bool) ([]model.Comment, error) {
	out := make([]model.Comment, 0)
	for _, c := range f.comments {
		if c.TutorialID != tutorialID {
			continue
		}
		if approvedOnly && !c.Approved {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCommentRepo) ListWithTutorial(ctx context.Context, status string, tutorialID *uuid.UUID) ([]model.CommentWithTutorial, error) {
	out := make([]model.CommentWithTutorial, 0)
	for _, c := range f.comments {
		if tutorialID != nil && c.TutorialID != *tutorialID {
			continue
		}
		if status == model.StatusPending && c.Approved {
			continue
		}
		if status == model.StatusApproved && !c.Approved {
			continue
		}

		replies := 0
		for _, r := range f.comments {
			if r.ParentID != nil && *r.ParentID == c.ID {
				replies++
			}
		}

		row := model.CommentWithTutorial{Comment: *c, ReplyCount: replies}
		if t, ok := f.tutorials[c.TutorialID]; ok {
			row.TutorialTitle = t.Title
			row.TutorialSlug = t.Slug
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeCommentRepo) Approve(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	for _, c := range f.comments {
		if c.ID == id {
			c.Approved = true
			clone := *c
			return &clone, nil
		}
	}
	return nil, model.ErrCommentNotFound
}

func (f *fakeCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, c := range f.comments {
		if c.ID == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return model.ErrCommentNotFound
}

func (f *fakeCommentRepo) CountPending(ctx context.Context) (int, error) {
	count := 0
	for _, c := range f.comments {
		if !c.Approved {
			count++
		}
	}
	return count, nil
}

type fakeTutorialRepo struct {
	tutorials map[uuid.UUID]*tutorialmodel.Tutorial
}

func (f *fakeTutorialRepo) Create(ctx context.Context, t *tutorialmodel.Tutorial) (*tutorialmodel.Tutorial, error) {
	f.tutorials[t.ID] = t
	return t, nil
}

func (f *fakeTutorialRepo) GetByID(ctx context.Context, id uuid.UUID) (*tutorialmodel.Tutorial, error) {
	if t, ok := f.tutorials[id]; ok {
		return t, nil
	}
	return nil, tutorialmodel.ErrTutorialNotFound
}

func (f *fakeTutorialRepo) GetBySlug(ctx context.Context, slug string) (*tutorialmodel.Tutorial, error) {
	for _, t := range f.tutorials {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, tutorialmodel.ErrTutorialNotFound
}

func (f *fakeTutorialRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeTutorialRepo) List(ctx context.Context, categoryID *uuid.UUID, publishedOnly bool) ([]tutorialmodel.Tutorial, error) {
	return nil, nil
}

func (f *fakeTutorialRepo) Update(ctx context.Context, t *tutorialmodel.Tutorial) (*tutorialmodel.Tutorial, error) {
	return t, nil
}

func (f *fakeTutorialRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeTutorialRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error { return nil }

func setup() (ServiceInterface, *fakeCommentRepo, *tutorialmodel.Tutorial) {
	tutorial := &tutorialmodel.Tutorial{
		ID:        uuid.New(),
		Title:     "Blink an LED",
		Slug:      "blink-an-led",
		Published: true,
	}
	tutorials := map[uuid.UUID]*tutorialmodel.Tutorial{tutorial.ID: tutorial}
	repo := newFakeCommentRepo(tutorials)
	svc := NewCommentService(repo, &fakeTutorialRepo{tutorials: tutorials})
	return svc, repo, tutorial
}

func validRequest() model.CreateCommentRequest {
	return model.CreateCommentRequest{
		AuthorName:  "Ada",
		AuthorEmail: "ada@example.com",
		Content:     "Great walkthrough!",
	}
}

// ========================================
// TESTS
// ========================================

func TestPublicCommentStartsUnapproved(t *testing.T) {
	svc, _, tutorial := setup()

	created, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)

	assert.False(t, created.Approved)
	assert.Equal(t, tutorial.ID, created.TutorialID)
	assert.Nil(t, created.ParentID)
}

func TestAdminReplyApprovedWhenFlagSet(t *testing.T) {
	svc, _, tutorial := setup()

	req := model.AdminCreateCommentRequest{CreateCommentRequest: validRequest(), Approved: true}
	created, err := svc.CreateAdminReply(context.Background(), tutorial.ID, req)
	require.NoError(t, err)
	assert.True(t, created.Approved)
}

func TestAdminReplyQueuesWithoutApproveFlag(t *testing.T) {
	svc, _, tutorial := setup()

	req := model.AdminCreateCommentRequest{CreateCommentRequest: validRequest()}
	created, err := svc.CreateAdminReply(context.Background(), tutorial.ID, req)
	require.NoError(t, err)
	assert.False(t, created.Approved)
}

func TestCommentOnUnknownTutorial(t *testing.T) {
	svc, _, _ := setup()

	_, err := svc.Create(context.Background(), "no-such-tutorial", validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrTutorialNotFound))
}

func TestCommentOnDraftTutorialRejected(t *testing.T) {
	tutorial := &tutorialmodel.Tutorial{ID: uuid.New(), Slug: "draft", Published: false}
	tutorials := map[uuid.UUID]*tutorialmodel.Tutorial{tutorial.ID: tutorial}
	svc := NewCommentService(newFakeCommentRepo(tutorials), &fakeTutorialRepo{tutorials: tutorials})

	_, err := svc.Create(context.Background(), "draft", validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrTutorialNotFound))
}

func TestReplyToCommentOnSameTutorial(t *testing.T) {
	svc, _, tutorial := setup()

	parent, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.ParentID = &parent.ID
	reply, err := svc.Create(context.Background(), tutorial.Slug, req)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

func TestReplyAcrossTutorialsRejected(t *testing.T) {
	svc, repo, tutorial := setup()

	// Second tutorial sharing the same store.
	other := &tutorialmodel.Tutorial{ID: uuid.New(), Title: "Ohm's Law", Slug: "ohms-law", Published: true}
	repo.tutorials[other.ID] = other

	parent, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.ParentID = &parent.ID
	_, err = svc.Create(context.Background(), other.Slug, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrParentMismatch))
}

func TestReplyToMissingParentRejected(t *testing.T) {
	svc, _, tutorial := setup()

	bogus := uuid.New()
	req := validRequest()
	req.ParentID = &bogus
	_, err := svc.Create(context.Background(), tutorial.Slug, req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrParentNotFound))
}

func TestApproveIsIdempotent(t *testing.T) {
	svc, _, tutorial := setup()

	created, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)

	first, err := svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, first.Approved)

	second, err := svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, second.Approved)
}

func TestApproveMissingComment(t *testing.T) {
	svc, _, _ := setup()

	_, err := svc.Approve(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrCommentNotFound))
}

func TestDeleteLeavesRepliesInPlace(t *testing.T) {
	svc, _, tutorial := setup()

	parent, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)
	req := validRequest()
	req.ParentID = &parent.ID
	reply, err := svc.Create(context.Background(), tutorial.Slug, req)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), parent.ID))

	// The orphaned reply is still listed; no cascade, no error.
	queue, err := svc.List(context.Background(), model.ListCommentsQuery{})
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, reply.ID, queue[0].ID)
}

func TestModerationQueueFiltersAndJoins(t *testing.T) {
	svc, _, tutorial := setup()

	pending, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)
	req := validRequest()
	req.ParentID = &pending.ID
	_, err = svc.Create(context.Background(), tutorial.Slug, req)
	require.NoError(t, err)

	approved, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), approved.ID)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), model.ListCommentsQuery{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pendingRows, err := svc.List(context.Background(), model.ListCommentsQuery{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pendingRows, 2)

	approvedRows, err := svc.List(context.Background(), model.ListCommentsQuery{Status: "approved"})
	require.NoError(t, err)
	require.Len(t, approvedRows, 1)
	assert.Equal(t, tutorial.Title, approvedRows[0].TutorialTitle)
	assert.Equal(t, tutorial.Slug, approvedRows[0].TutorialSlug)

	// The threaded parent shows its reply count.
	for _, row := range all {
		if row.ID == pending.ID {
			assert.Equal(t, 1, row.ReplyCount)
		}
	}
}

func TestModerationQueueDefaultsToPending(t *testing.T) {
	svc, _, tutorial := setup()

	pending, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)

	approved, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), approved.ID)
	require.NoError(t, err)

	// No status supplied: only the pending comment shows up.
	queue, err := svc.List(context.Background(), model.ListCommentsQuery{})
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, pending.ID, queue[0].ID)
}

func TestCountPending(t *testing.T) {
	svc, _, tutorial := setup()

	_, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)

	approved, err := svc.Create(context.Background(), tutorial.Slug, validRequest())
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), approved.ID)
	require.NoError(t, err)

	count, err := svc.CountPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestModerationQueueRejectsBadStatus(t *testing.T) {
	svc, _, _ := setup()

	_, err := svc.List(context.Background(), model.ListCommentsQuery{Status: "rejected"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestCommentValidation(t *testing.T) {
	svc, _, tutorial := setup()

	tests := []struct {
		name string
		mut  func(*model.CreateCommentRequest)
	}{
		{"missing author", func(r *model.CreateCommentRequest) { r.AuthorName = "" }},
		{"bad email", func(r *model.CreateCommentRequest) { r.AuthorEmail = "not-an-email" }},
		{"empty content", func(r *model.CreateCommentRequest) { r.Content = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mut(&req)
			_, err := svc.Create(context.Background(), tutorial.Slug, req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidInput))
		})
	}
}
