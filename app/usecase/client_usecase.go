package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// ClientUseCase implements client directory business logic
type ClientUseCase struct {
	clientRepo port.ClientRepository
	logger     *slog.Logger
}

// NewClientUseCase creates a new ClientUseCase instance
func NewClientUseCase(clientRepo port.ClientRepository, logger *slog.Logger) *ClientUseCase {
	return &ClientUseCase{
		clientRepo: clientRepo,
		logger:     logger.With("component", "client_usecase"),
	}
}

// CreateClient creates a new client with a unique slug
func (uc *ClientUseCase) CreateClient(ctx context.Context, req *domain.CreateClientRequest) (*domain.Client, error) {
	if _, err := uc.clientRepo.GetBySlug(ctx, req.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	}

	client, err := domain.NewClient(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	uc.logger.Info("client created", "client_id", client.ID, "slug", client.Slug)

	return client, nil
}

// GetClientByID retrieves a client by ID
func (uc *ClientUseCase) GetClientByID(ctx context.Context, clientID uuid.UUID) (*domain.Client, error) {
	return uc.clientRepo.GetByID(ctx, clientID)
}

// GetClientBySlug retrieves a client by slug
func (uc *ClientUseCase) GetClientBySlug(ctx context.Context, slug string) (*domain.Client, error) {
	return uc.clientRepo.GetBySlug(ctx, slug)
}

// ListClients lists clients with pagination
func (uc *ClientUseCase) ListClients(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	limit = normalizeLimit(limit)
	return uc.clientRepo.List(ctx, limit, offset)
}

// SuspendClient suspends a client
func (uc *ClientUseCase) SuspendClient(ctx context.Context, clientID uuid.UUID) error {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}

	client.Suspend()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return err
	}

	uc.logger.Info("client suspended", "client_id", clientID)
	return nil
}

// ActivateClient reactivates a suspended client
func (uc *ClientUseCase) ActivateClient(ctx context.Context, clientID uuid.UUID) error {
	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return err
	}

	client.Activate()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return err
	}

	uc.logger.Info("client activated", "client_id", clientID)
	return nil
}

// normalizeLimit clamps list page sizes to a sane window
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
