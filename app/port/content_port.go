package port

//go:generate mockgen -source=content_port.go -destination=../mocks/mock_content_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
)

// BlogUsecase defines blog management business logic. Every operation
// is scoped to a single client; callers pass the client id resolved by
// the gate.
type BlogUsecase interface {
	CreateBlogPost(ctx context.Context, clientID, authorID uuid.UUID, req *domain.CreateBlogPostRequest) (*domain.BlogPost, error)
	GetBlogPost(ctx context.Context, clientID, postID uuid.UUID) (*domain.BlogPost, error)
	ListBlogPosts(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.BlogPost, error)
	PublishBlogPost(ctx context.Context, clientID, postID uuid.UUID) (*domain.BlogPost, error)
	DeleteBlogPost(ctx context.Context, clientID, postID uuid.UUID) error
}

// BlogRepository defines blog data access
type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	GetByID(ctx context.Context, clientID, postID uuid.UUID) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, clientID uuid.UUID, slug string) (*domain.BlogPost, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, clientID, postID uuid.UUID) error
	ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.BlogPost, error)
}

// InquiryUsecase defines inquiry triage business logic
type InquiryUsecase interface {
	SubmitInquiry(ctx context.Context, clientID uuid.UUID, req *domain.SubmitInquiryRequest) (*domain.Inquiry, error)
	GetInquiry(ctx context.Context, clientID, inquiryID uuid.UUID) (*domain.Inquiry, error)
	ListInquiries(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, clientID, inquiryID uuid.UUID, status domain.InquiryStatus) (*domain.Inquiry, error)
}

// InquiryRepository defines inquiry data access
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.Inquiry) error
	GetByID(ctx context.Context, clientID, inquiryID uuid.UUID) (*domain.Inquiry, error)
	Update(ctx context.Context, inquiry *domain.Inquiry) error
	ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Inquiry, error)
}

// TaskUsecase defines task management business logic
type TaskUsecase interface {
	CreateTask(ctx context.Context, clientID, creatorID uuid.UUID, req *domain.CreateTaskRequest) (*domain.Task, error)
	GetTask(ctx context.Context, clientID, taskID uuid.UUID) (*domain.Task, error)
	ListTasks(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, clientID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)
	AssignTask(ctx context.Context, clientID, taskID, assigneeID uuid.UUID) (*domain.Task, error)
}

// TaskRepository defines task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, clientID, taskID uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Task, error)
}
