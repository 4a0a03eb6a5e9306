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

// ClientRepository implements port.ClientRepository for PostgreSQL
type ClientRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewClientRepository creates a new PostgreSQL client repository
func NewClientRepository(db DatabaseIface, logger *slog.Logger) port.ClientRepository {
	return &ClientRepository{
		db:     db,
		logger: logger.With("component", "client_repository"),
	}
}

const clientColumns = `id, slug, name, website, status, created_at, updated_at, deleted_at`

// Create creates a new client
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (
			id, slug, name, website, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`

	r.logger.Info("creating client", "client_id", client.ID, "slug", client.Slug)

	_, err := r.db.Exec(ctx, query,
		client.ID,
		client.Slug,
		client.Name,
		nullIfEmpty(client.Website),
		string(client.Status),
		client.CreatedAt,
		client.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to create client", "client_id", client.ID, "error", err)
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(ctx context.Context, clientID uuid.UUID) (*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE id = $1 AND deleted_at IS NULL`

	return r.scanClient(r.db.QueryRow(ctx, query, clientID))
}

// GetBySlug retrieves a client by slug
func (r *ClientRepository) GetBySlug(ctx context.Context, slug string) (*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE slug = $1 AND deleted_at IS NULL`

	return r.scanClient(r.db.QueryRow(ctx, query, slug))
}

// Update updates a client
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET slug = $2, name = $3, website = $4, status = $5, updated_at = $6, deleted_at = $7
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		client.ID,
		client.Slug,
		client.Name,
		nullIfEmpty(client.Website),
		string(client.Status),
		client.UpdatedAt,
		client.DeletedAt,
	)

	if err != nil {
		r.logger.Error("failed to update client", "client_id", client.ID, "error", err)
		return fmt.Errorf("failed to update client: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// List lists clients with pagination
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		client, err := r.scanClientRow(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}

	return clients, nil
}

func (r *ClientRepository) scanClient(row pgx.Row) (*domain.Client, error) {
	var client domain.Client
	var website *string
	var statusStr string

	err := row.Scan(
		&client.ID,
		&client.Slug,
		&client.Name,
		&website,
		&statusStr,
		&client.CreatedAt,
		&client.UpdatedAt,
		&client.DeletedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	if website != nil {
		client.Website = *website
	}
	client.Status = domain.ClientStatus(statusStr)

	return &client, nil
}

func (r *ClientRepository) scanClientRow(rows pgx.Rows) (*domain.Client, error) {
	var client domain.Client
	var website *string
	var statusStr string

	if err := rows.Scan(
		&client.ID,
		&client.Slug,
		&client.Name,
		&website,
		&statusStr,
		&client.CreatedAt,
		&client.UpdatedAt,
		&client.DeletedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan client row: %w", err)
	}

	if website != nil {
		client.Website = *website
	}
	client.Status = domain.ClientStatus(statusStr)

	return &client, nil
}
