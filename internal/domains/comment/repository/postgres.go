package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"circuithub-backend/internal/domains/comment/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const commentColumns = `id, tutorial_id, parent_id, author_name, author_email, content, approved, created_at`

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(
		&c.ID,
		&c.TutorialID,
		&c.ParentID,
		&c.AuthorName,
		&c.AuthorEmail,
		&c.Content,
		&c.Approved,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	query := `
        INSERT INTO comments (id, tutorial_id, parent_id, author_name, author_email, content, approved)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + commentColumns

	created, err := scanComment(r.pool.QueryRow(
		ctx,
		query,
		comment.ID,
		comment.TutorialID,
		comment.ParentID,
		comment.AuthorName,
		comment.AuthorEmail,
		comment.Content,
		comment.Approved,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	comment, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

func (r *postgresRepository) ListByTutorial(ctx context.Context, tutorialID uuid.UUID, approvedOnly bool) ([]model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE tutorial_id = $1`
	if approvedOnly {
		query += ` AND approved = TRUE`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, tutorialID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}

func (r *postgresRepository) ListWithTutorial(ctx context.Context, status string, tutorialID *uuid.UUID) ([]model.CommentWithTutorial, error) {
	query := `
        SELECT c.id, c.tutorial_id, c.parent_id, c.author_name, c.author_email,
               c.content, c.approved, c.created_at,
               t.title, t.slug,
               (SELECT COUNT(*) FROM comments r WHERE r.parent_id = c.id) AS reply_count
        FROM comments c
        JOIN tutorials t ON t.id = c.tutorial_id
        WHERE 1=1`
	args := []interface{}{}

	switch status {
	case model.StatusPending:
		query += ` AND c.approved = FALSE`
	case model.StatusApproved:
		query += ` AND c.approved = TRUE`
	}
	if tutorialID != nil {
		args = append(args, *tutorialID)
		query += fmt.Sprintf(" AND c.tutorial_id = $%d", len(args))
	}
	query += ` ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list moderation queue: %w", err)
	}
	defer rows.Close()

	comments := make([]model.CommentWithTutorial, 0)
	for rows.Next() {
		var c model.CommentWithTutorial
		err := rows.Scan(
			&c.ID,
			&c.TutorialID,
			&c.ParentID,
			&c.AuthorName,
			&c.AuthorEmail,
			&c.Content,
			&c.Approved,
			&c.CreatedAt,
			&c.TutorialTitle,
			&c.TutorialSlug,
			&c.ReplyCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan moderation row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read moderation queue: %w", err)
	}

	return comments, nil
}

func (r *postgresRepository) Approve(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `UPDATE comments SET approved = TRUE WHERE id = $1 RETURNING ` + commentColumns

	comment, err := scanComment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to approve comment: %w", err)
	}

	return comment, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// parent_id is not cascaded on purpose. Orphaned replies stay and are
	// rendered as top-level comments.
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}

func (r *postgresRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM comments WHERE approved = FALSE`
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending comments: %w", err)
	}
	return count, nil
}
