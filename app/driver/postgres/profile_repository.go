package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// ProfileRepository implements port.ProfileRepository for PostgreSQL
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// GetByID retrieves a profile by its identity id
func (r *ProfileRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, email, name, role, client_id, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	var profile domain.Profile
	var roleStr string

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.Email,
		&profile.Name,
		&roleStr,
		&profile.ClientID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	role, err := domain.ParseRole(roleStr)
	if err != nil {
		r.logger.Error("profile has unknown role", "user_id", userID, "role", roleStr)
		return nil, fmt.Errorf("invalid stored role for profile %s: %w", userID, err)
	}
	profile.Role = role

	return &profile, nil
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, email, name, role, client_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`

	r.logger.Info("creating profile", "user_id", profile.ID, "role", profile.Role)

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.Name,
		string(profile.Role),
		profile.ClientID,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to create profile", "user_id", profile.ID, "error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// Update updates an existing profile
func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET email = $2, name = $3, role = $4, client_id = $5, updated_at = $6
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.Name,
		string(profile.Role),
		profile.ClientID,
		profile.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to update profile", "user_id", profile.ID, "error", err)
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}

// ListByClient lists profiles whose home client matches
func (r *ProfileRepository) ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Profile, error) {
	query := `
		SELECT id, email, name, role, client_id, created_at, updated_at
		FROM profiles
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		r.logger.Error("failed to list profiles", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		var profile domain.Profile
		var roleStr string

		if err := rows.Scan(
			&profile.ID,
			&profile.Email,
			&profile.Name,
			&roleStr,
			&profile.ClientID,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}

		role, err := domain.ParseRole(roleStr)
		if err != nil {
			return nil, fmt.Errorf("invalid stored role for profile %s: %w", profile.ID, err)
		}
		profile.Role = role

		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}
