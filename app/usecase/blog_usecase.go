package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// BlogUseCase implements blog management business logic. Every
// operation takes the client id resolved by the gate; rows belonging
// to other clients are invisible.
type BlogUseCase struct {
	blogRepo port.BlogRepository
	logger   *slog.Logger
}

// NewBlogUseCase creates a new BlogUseCase instance
func NewBlogUseCase(blogRepo port.BlogRepository, logger *slog.Logger) *BlogUseCase {
	return &BlogUseCase{
		blogRepo: blogRepo,
		logger:   logger.With("component", "blog_usecase"),
	}
}

// CreateBlogPost creates a draft post for the client. The slug is
// derived from the title and must be unique within the client.
func (uc *BlogUseCase) CreateBlogPost(ctx context.Context, clientID, authorID uuid.UUID, req *domain.CreateBlogPostRequest) (*domain.BlogPost, error) {
	post, err := domain.NewBlogPost(clientID, authorID, req.Title, req.Body)
	if err != nil {
		return nil, err
	}
	post.Excerpt = req.Excerpt

	if _, err := uc.blogRepo.GetBySlug(ctx, clientID, post.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrBlogPostNotFound) {
		return nil, err
	}

	if err := uc.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	uc.logger.Info("blog post created",
		"post_id", post.ID,
		"client_id", clientID,
		"slug", post.Slug)

	return post, nil
}

// GetBlogPost retrieves a post within the client
func (uc *BlogUseCase) GetBlogPost(ctx context.Context, clientID, postID uuid.UUID) (*domain.BlogPost, error) {
	return uc.blogRepo.GetByID(ctx, clientID, postID)
}

// ListBlogPosts lists the client's posts with pagination
func (uc *BlogUseCase) ListBlogPosts(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.BlogPost, error) {
	limit = normalizeLimit(limit)
	return uc.blogRepo.ListByClient(ctx, clientID, limit, offset)
}

// PublishBlogPost publishes a draft post
func (uc *BlogUseCase) PublishBlogPost(ctx context.Context, clientID, postID uuid.UUID) (*domain.BlogPost, error) {
	post, err := uc.blogRepo.GetByID(ctx, clientID, postID)
	if err != nil {
		return nil, err
	}

	post.Publish()

	if err := uc.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	uc.logger.Info("blog post published", "post_id", postID, "client_id", clientID)

	return post, nil
}

// DeleteBlogPost deletes a post within the client
func (uc *BlogUseCase) DeleteBlogPost(ctx context.Context, clientID, postID uuid.UUID) error {
	if err := uc.blogRepo.Delete(ctx, clientID, postID); err != nil {
		return err
	}

	uc.logger.Info("blog post deleted", "post_id", postID, "client_id", clientID)
	return nil
}
