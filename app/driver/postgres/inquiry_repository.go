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

// InquiryRepository implements port.InquiryRepository for PostgreSQL
type InquiryRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewInquiryRepository creates a new PostgreSQL inquiry repository
func NewInquiryRepository(db DatabaseIface, logger *slog.Logger) port.InquiryRepository {
	return &InquiryRepository{
		db:     db,
		logger: logger.With("component", "inquiry_repository"),
	}
}

const inquiryColumns = `id, client_id, name, email, phone, message, status, created_at, updated_at`

// Create creates a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	query := `
		INSERT INTO inquiries (
			id, client_id, name, email, phone, message, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`

	_, err := r.db.Exec(ctx, query,
		inquiry.ID,
		inquiry.ClientID,
		inquiry.Name,
		inquiry.Email,
		nullIfEmpty(inquiry.Phone),
		inquiry.Message,
		string(inquiry.Status),
		inquiry.CreatedAt,
		inquiry.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to create inquiry", "inquiry_id", inquiry.ID, "error", err)
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

// GetByID retrieves an inquiry by ID within a client
func (r *InquiryRepository) GetByID(ctx context.Context, clientID, inquiryID uuid.UUID) (*domain.Inquiry, error) {
	query := `
		SELECT ` + inquiryColumns + `
		FROM inquiries
		WHERE client_id = $1 AND id = $2`

	var inquiry domain.Inquiry
	var phone *string
	var statusStr string

	err := r.db.QueryRow(ctx, query, clientID, inquiryID).Scan(
		&inquiry.ID,
		&inquiry.ClientID,
		&inquiry.Name,
		&inquiry.Email,
		&phone,
		&inquiry.Message,
		&statusStr,
		&inquiry.CreatedAt,
		&inquiry.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}

	if phone != nil {
		inquiry.Phone = *phone
	}
	inquiry.Status = domain.InquiryStatus(statusStr)

	return &inquiry, nil
}

// Update updates an inquiry
func (r *InquiryRepository) Update(ctx context.Context, inquiry *domain.Inquiry) error {
	query := `
		UPDATE inquiries
		SET status = $3, updated_at = $4
		WHERE client_id = $1 AND id = $2`

	result, err := r.db.Exec(ctx, query,
		inquiry.ClientID,
		inquiry.ID,
		string(inquiry.Status),
		inquiry.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to update inquiry", "inquiry_id", inquiry.ID, "error", err)
		return fmt.Errorf("failed to update inquiry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrInquiryNotFound
	}

	return nil
}

// ListByClient lists inquiries for a client with pagination, newest first
func (r *InquiryRepository) ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Inquiry, error) {
	query := `
		SELECT ` + inquiryColumns + `
		FROM inquiries
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		r.logger.Error("failed to list inquiries", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*domain.Inquiry
	for rows.Next() {
		var inquiry domain.Inquiry
		var phone *string
		var statusStr string

		if err := rows.Scan(
			&inquiry.ID,
			&inquiry.ClientID,
			&inquiry.Name,
			&inquiry.Email,
			&phone,
			&inquiry.Message,
			&statusStr,
			&inquiry.CreatedAt,
			&inquiry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry row: %w", err)
		}

		if phone != nil {
			inquiry.Phone = *phone
		}
		inquiry.Status = domain.InquiryStatus(statusStr)
		inquiries = append(inquiries, &inquiry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inquiry rows: %w", err)
	}

	return inquiries, nil
}
