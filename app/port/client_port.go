package port

//go:generate mockgen -source=client_port.go -destination=../mocks/mock_client_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
)

// ClientUsecase defines client directory business logic
type ClientUsecase interface {
	CreateClient(ctx context.Context, req *domain.CreateClientRequest) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID uuid.UUID) (*domain.Client, error)
	GetClientBySlug(ctx context.Context, slug string) (*domain.Client, error)
	ListClients(ctx context.Context, limit, offset int) ([]*domain.Client, error)
	SuspendClient(ctx context.Context, clientID uuid.UUID) error
	ActivateClient(ctx context.Context, clientID uuid.UUID) error
}

// ClientRepository defines client data access
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, clientID uuid.UUID) (*domain.Client, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	List(ctx context.Context, limit, offset int) ([]*domain.Client, error)
}
