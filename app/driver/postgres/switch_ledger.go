package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// SwitchLedger implements port.SwitchLedger for PostgreSQL. The table
// is append-only; nothing in the request path updates or reads rows.
type SwitchLedger struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewSwitchLedger creates a new PostgreSQL switch ledger
func NewSwitchLedger(db DatabaseIface, logger *slog.Logger) port.SwitchLedger {
	return &SwitchLedger{
		db:     db,
		logger: logger.With("component", "switch_ledger"),
	}
}

// Append records a client switch event
func (l *SwitchLedger) Append(ctx context.Context, event *domain.ClientSwitchEvent) error {
	query := `
		INSERT INTO client_switch_events (
			id, user_id, client_id, ip_address, user_agent, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	_, err := l.db.Exec(ctx, query,
		event.ID,
		event.UserID,
		event.ClientID,
		nullIfEmpty(event.IPAddress),
		nullIfEmpty(event.UserAgent),
		event.CreatedAt,
	)

	if err != nil {
		l.logger.Error("failed to append switch event",
			"user_id", event.UserID,
			"client_id", event.ClientID,
			"error", err)
		return fmt.Errorf("failed to append switch event: %w", err)
	}

	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
