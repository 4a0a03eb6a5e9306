package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// GrantUseCase implements grant administration business logic
type GrantUseCase struct {
	grantRepo   port.GrantRepository
	profileRepo port.ProfileRepository
	clientRepo  port.ClientRepository
	logger      *slog.Logger
}

// NewGrantUseCase creates a new GrantUseCase instance
func NewGrantUseCase(
	grantRepo port.GrantRepository,
	profileRepo port.ProfileRepository,
	clientRepo port.ClientRepository,
	logger *slog.Logger,
) *GrantUseCase {
	return &GrantUseCase{
		grantRepo:   grantRepo,
		profileRepo: profileRepo,
		clientRepo:  clientRepo,
		logger:      logger.With("component", "grant_usecase"),
	}
}

// GrantClient permits a user to act as a client. The target user must
// exist and hold a role that can carry grants; the client must exist
// and not be deleted.
func (uc *GrantUseCase) GrantClient(ctx context.Context, userID, clientID, grantedBy uuid.UUID) (*domain.ClientGrant, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !profile.Role.CanHoldGrants() {
		return nil, fmt.Errorf("role %s cannot hold client grants: %w", profile.Role, domain.ErrForbidden)
	}

	client, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if client.IsDeleted() {
		return nil, domain.ErrClientNotFound
	}

	grant, err := domain.NewClientGrant(userID, clientID, grantedBy)
	if err != nil {
		return nil, err
	}

	if err := uc.grantRepo.Create(ctx, grant); err != nil {
		return nil, err
	}

	uc.logger.Info("client grant created",
		"user_id", userID,
		"client_id", clientID,
		"granted_by", grantedBy)

	return grant, nil
}

// RevokeClient removes a user's grant for a client
func (uc *GrantUseCase) RevokeClient(ctx context.Context, userID, clientID uuid.UUID) error {
	if err := uc.grantRepo.Delete(ctx, userID, clientID); err != nil {
		return err
	}

	uc.logger.Info("client grant revoked",
		"user_id", userID,
		"client_id", clientID)

	return nil
}

// ListGrants lists all grants held by a user
func (uc *GrantUseCase) ListGrants(ctx context.Context, userID uuid.UUID) ([]*domain.ClientGrant, error) {
	return uc.grantRepo.ListByUser(ctx, userID)
}
