package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// BlogRepository implements port.BlogRepository for PostgreSQL
type BlogRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewBlogRepository creates a new PostgreSQL blog repository
func NewBlogRepository(db DatabaseIface, logger *slog.Logger) port.BlogRepository {
	return &BlogRepository{
		db:     db,
		logger: logger.With("component", "blog_repository"),
	}
}

const blogColumns = `id, client_id, author_id, title, slug, excerpt, body, status, published_at, created_at, updated_at`

// Create creates a new blog post
func (r *BlogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	query := `
		INSERT INTO blog_posts (
			id, client_id, author_id, title, slug, excerpt, body, status, published_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`

	_, err := r.db.Exec(ctx, query,
		post.ID,
		post.ClientID,
		post.AuthorID,
		post.Title,
		post.Slug,
		nullIfEmpty(post.Excerpt),
		post.Body,
		string(post.Status),
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlugTaken
		}
		r.logger.Error("failed to create blog post", "post_id", post.ID, "error", err)
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	return nil
}

// GetByID retrieves a blog post by ID within a client
func (r *BlogRepository) GetByID(ctx context.Context, clientID, postID uuid.UUID) (*domain.BlogPost, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blog_posts
		WHERE client_id = $1 AND id = $2`

	return r.scanPost(r.db.QueryRow(ctx, query, clientID, postID))
}

// GetBySlug retrieves a blog post by slug within a client
func (r *BlogRepository) GetBySlug(ctx context.Context, clientID uuid.UUID, slug string) (*domain.BlogPost, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blog_posts
		WHERE client_id = $1 AND slug = $2`

	return r.scanPost(r.db.QueryRow(ctx, query, clientID, slug))
}

// Update updates a blog post
func (r *BlogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $3, slug = $4, excerpt = $5, body = $6, status = $7, published_at = $8, updated_at = $9
		WHERE client_id = $1 AND id = $2`

	result, err := r.db.Exec(ctx, query,
		post.ClientID,
		post.ID,
		post.Title,
		post.Slug,
		nullIfEmpty(post.Excerpt),
		post.Body,
		string(post.Status),
		post.PublishedAt,
		post.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to update blog post", "post_id", post.ID, "error", err)
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrBlogPostNotFound
	}

	return nil
}

// Delete deletes a blog post within a client
func (r *BlogRepository) Delete(ctx context.Context, clientID, postID uuid.UUID) error {
	query := `DELETE FROM blog_posts WHERE client_id = $1 AND id = $2`

	result, err := r.db.Exec(ctx, query, clientID, postID)
	if err != nil {
		r.logger.Error("failed to delete blog post", "post_id", postID, "error", err)
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrBlogPostNotFound
	}

	return nil
}

// ListByClient lists blog posts for a client with pagination
func (r *BlogRepository) ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.BlogPost, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blog_posts
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		r.logger.Error("failed to list blog posts", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.BlogPost
	for rows.Next() {
		post, err := r.scanPostRow(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog post rows: %w", err)
	}

	return posts, nil
}

func (r *BlogRepository) scanPost(row pgx.Row) (*domain.BlogPost, error) {
	var post domain.BlogPost
	var excerpt *string
	var statusStr string

	err := row.Scan(
		&post.ID,
		&post.ClientID,
		&post.AuthorID,
		&post.Title,
		&post.Slug,
		&excerpt,
		&post.Body,
		&statusStr,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	if excerpt != nil {
		post.Excerpt = *excerpt
	}
	post.Status = domain.BlogStatus(statusStr)

	return &post, nil
}

func (r *BlogRepository) scanPostRow(rows pgx.Rows) (*domain.BlogPost, error) {
	var post domain.BlogPost
	var excerpt *string
	var statusStr string

	if err := rows.Scan(
		&post.ID,
		&post.ClientID,
		&post.AuthorID,
		&post.Title,
		&post.Slug,
		&excerpt,
		&post.Body,
		&statusStr,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan blog post row: %w", err)
	}

	if excerpt != nil {
		post.Excerpt = *excerpt
	}
	post.Status = domain.BlogStatus(statusStr)

	return &post, nil
}
