package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// ProfileUseCase implements profile administration business logic
type ProfileUseCase struct {
	profileRepo port.ProfileRepository
	clientRepo  port.ClientRepository
	logger      *slog.Logger
}

// NewProfileUseCase creates a new ProfileUseCase instance
func NewProfileUseCase(
	profileRepo port.ProfileRepository,
	clientRepo port.ClientRepository,
	logger *slog.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		clientRepo:  clientRepo,
		logger:      logger.With("component", "profile_usecase"),
	}
}

// GetProfile returns the profile for an identity-provider account
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, userID)
}

// CreateProfile registers a back-office profile. The id must be the
// Kratos identity id; client-role profiles must reference an existing,
// non-deleted client.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, id uuid.UUID, email, name string, role domain.Role, clientID *uuid.UUID) (*domain.Profile, error) {
	if _, err := uc.profileRepo.GetByID(ctx, id); err == nil {
		return nil, fmt.Errorf("profile %s already exists: %w", id, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	if clientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *clientID)
		if err != nil {
			return nil, err
		}
		if client.IsDeleted() {
			return nil, domain.ErrClientNotFound
		}
	}

	profile, err := domain.NewProfile(id, email, role, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrInvalidInput)
	}
	profile.Name = name

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	uc.logger.Info("profile created",
		"user_id", profile.ID,
		"role", profile.Role)

	return profile, nil
}

// ChangeRole updates a profile's role
func (uc *ProfileUseCase) ChangeRole(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := profile.ChangeRole(role); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrInvalidInput)
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	uc.logger.Info("profile role changed",
		"user_id", userID,
		"role", role)

	return profile, nil
}

// ListProfilesByClient returns the profiles homed at a client
func (uc *ProfileUseCase) ListProfilesByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Profile, error) {
	return uc.profileRepo.ListByClient(ctx, clientID, normalizeLimit(limit), offset)
}
