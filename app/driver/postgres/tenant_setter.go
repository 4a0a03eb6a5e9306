package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"backoffice-api/app/port"
)

// TenantSetter implements port.TenantContextSetter by publishing the
// effective client id as a Postgres configuration parameter.
//
// The write is session-scoped and lands on whichever pooled
// connection serves the Exec, so the value is advisory only: it is
// not guaranteed to be visible to the request's later queries, and a
// stale value may linger on a connection until overwritten. Every
// repository query therefore filters by client id explicitly, and
// row-level-security policies must not trust this parameter unless
// the whole request runs in one transaction with a local set_config.
type TenantSetter struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTenantSetter creates a new tenant context setter
func NewTenantSetter(db DatabaseIface, logger *slog.Logger) port.TenantContextSetter {
	return &TenantSetter{
		db:     db,
		logger: logger.With("component", "tenant_setter"),
	}
}

// SetEffectiveClient publishes the effective client for row scoping
func (s *TenantSetter) SetEffectiveClient(ctx context.Context, clientID uuid.UUID) error {
	query := `SELECT set_config('app.current_client_id', $1, false)`

	if _, err := s.db.Exec(ctx, query, clientID.String()); err != nil {
		return fmt.Errorf("failed to set effective client: %w", err)
	}

	return nil
}
