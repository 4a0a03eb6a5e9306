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

// GrantRepository implements port.GrantRepository for PostgreSQL
type GrantRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewGrantRepository creates a new PostgreSQL grant repository
func NewGrantRepository(db DatabaseIface, logger *slog.Logger) port.GrantRepository {
	return &GrantRepository{
		db:     db,
		logger: logger.With("component", "grant_repository"),
	}
}

// Get retrieves the grant for a (user, client) pair
func (r *GrantRepository) Get(ctx context.Context, userID, clientID uuid.UUID) (*domain.ClientGrant, error) {
	query := `
		SELECT user_id, client_id, granted_by, granted_at
		FROM client_grants
		WHERE user_id = $1 AND client_id = $2`

	var grant domain.ClientGrant

	err := r.db.QueryRow(ctx, query, userID, clientID).Scan(
		&grant.UserID,
		&grant.ClientID,
		&grant.GrantedBy,
		&grant.GrantedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGrantNotFound
		}
		r.logger.Error("failed to get grant", "user_id", userID, "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}

	return &grant, nil
}

// Create creates a new grant
func (r *GrantRepository) Create(ctx context.Context, grant *domain.ClientGrant) error {
	query := `
		INSERT INTO client_grants (user_id, client_id, granted_by, granted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, client_id) DO NOTHING`

	r.logger.Info("creating grant", "user_id", grant.UserID, "client_id", grant.ClientID)

	_, err := r.db.Exec(ctx, query,
		grant.UserID,
		grant.ClientID,
		grant.GrantedBy,
		grant.GrantedAt,
	)

	if err != nil {
		r.logger.Error("failed to create grant", "user_id", grant.UserID, "client_id", grant.ClientID, "error", err)
		return fmt.Errorf("failed to create grant: %w", err)
	}

	return nil
}

// Delete removes a grant
func (r *GrantRepository) Delete(ctx context.Context, userID, clientID uuid.UUID) error {
	query := `DELETE FROM client_grants WHERE user_id = $1 AND client_id = $2`

	result, err := r.db.Exec(ctx, query, userID, clientID)
	if err != nil {
		r.logger.Error("failed to delete grant", "user_id", userID, "client_id", clientID, "error", err)
		return fmt.Errorf("failed to delete grant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrGrantNotFound
	}

	return nil
}

// ListByUser lists all grants held by a user
func (r *GrantRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ClientGrant, error) {
	query := `
		SELECT user_id, client_id, granted_by, granted_at
		FROM client_grants
		WHERE user_id = $1
		ORDER BY granted_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to list grants", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}
	defer rows.Close()

	var grants []*domain.ClientGrant
	for rows.Next() {
		var grant domain.ClientGrant
		if err := rows.Scan(
			&grant.UserID,
			&grant.ClientID,
			&grant.GrantedBy,
			&grant.GrantedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan grant row: %w", err)
		}
		grants = append(grants, &grant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grant rows: %w", err)
	}

	return grants, nil
}
