package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice-api/app/domain"
	mock_port "backoffice-api/app/mocks"
)

func newBlogUsecase(t *testing.T) (*BlogUseCase, *mock_port.MockBlogRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	blogRepo := mock_port.NewMockBlogRepository(ctrl)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	return NewBlogUseCase(blogRepo, logger), blogRepo
}

func TestBlogUseCase_CreateBlogPost(t *testing.T) {
	clientID := uuid.New()
	authorID := uuid.New()

	t.Run("creates a draft with a derived slug", func(t *testing.T) {
		uc, blogRepo := newBlogUsecase(t)

		blogRepo.EXPECT().
			GetBySlug(gomock.Any(), clientID, "spring-launch-recap").
			Return(nil, domain.ErrBlogPostNotFound)
		blogRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		post, err := uc.CreateBlogPost(context.Background(), clientID, authorID, &domain.CreateBlogPostRequest{
			Title:   "Spring Launch Recap!",
			Excerpt: "highlights",
			Body:    "Full recap of the launch.",
		})

		require.NoError(t, err)
		assert.Equal(t, "spring-launch-recap", post.Slug)
		assert.Equal(t, domain.BlogStatusDraft, post.Status)
		assert.Equal(t, clientID, post.ClientID)
		assert.Equal(t, "highlights", post.Excerpt)
	})

	t.Run("rejects a duplicate slug within the client", func(t *testing.T) {
		uc, blogRepo := newBlogUsecase(t)

		blogRepo.EXPECT().
			GetBySlug(gomock.Any(), clientID, "spring-launch-recap").
			Return(&domain.BlogPost{ID: uuid.New()}, nil)

		post, err := uc.CreateBlogPost(context.Background(), clientID, authorID, &domain.CreateBlogPostRequest{
			Title: "Spring Launch Recap",
			Body:  "body",
		})

		assert.ErrorIs(t, err, domain.ErrSlugTaken)
		assert.Nil(t, post)
	})

	t.Run("rejects a title with no slug material", func(t *testing.T) {
		uc, _ := newBlogUsecase(t)

		post, err := uc.CreateBlogPost(context.Background(), clientID, authorID, &domain.CreateBlogPostRequest{
			Title: "!!!",
			Body:  "body",
		})

		assert.Error(t, err)
		assert.Nil(t, post)
	})
}

func TestBlogUseCase_PublishBlogPost(t *testing.T) {
	clientID := uuid.New()
	postID := uuid.New()

	t.Run("publishes a draft", func(t *testing.T) {
		uc, blogRepo := newBlogUsecase(t)

		blogRepo.EXPECT().
			GetByID(gomock.Any(), clientID, postID).
			Return(&domain.BlogPost{
				ID:       postID,
				ClientID: clientID,
				Status:   domain.BlogStatusDraft,
			}, nil)
		blogRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		post, err := uc.PublishBlogPost(context.Background(), clientID, postID)

		require.NoError(t, err)
		assert.Equal(t, domain.BlogStatusPublished, post.Status)
		assert.NotNil(t, post.PublishedAt)
	})

	t.Run("foreign client's post is invisible", func(t *testing.T) {
		uc, blogRepo := newBlogUsecase(t)

		blogRepo.EXPECT().
			GetByID(gomock.Any(), clientID, postID).
			Return(nil, domain.ErrBlogPostNotFound)

		post, err := uc.PublishBlogPost(context.Background(), clientID, postID)

		assert.ErrorIs(t, err, domain.ErrBlogPostNotFound)
		assert.Nil(t, post)
	})
}

func TestBlogUseCase_ListBlogPosts(t *testing.T) {
	clientID := uuid.New()

	uc, blogRepo := newBlogUsecase(t)

	// Zero limit normalizes to the default page size.
	blogRepo.EXPECT().
		ListByClient(gomock.Any(), clientID, 20, 0).
		Return([]*domain.BlogPost{{ID: uuid.New()}}, nil)

	posts, err := uc.ListBlogPosts(context.Background(), clientID, 0, 0)

	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
