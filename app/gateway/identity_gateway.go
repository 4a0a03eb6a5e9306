package gateway

import (
	"context"
	"log/slog"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// IdentityGateway implements port.IdentityGateway. It sits between
// the gate and the identity provider driver so the usecases never see
// provider types, and session-resolution logging happens in one place.
type IdentityGateway struct {
	resolver port.IdentityGateway
	logger   *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(resolver port.IdentityGateway, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		resolver: resolver,
		logger:   logger.With("component", "identity_gateway"),
	}
}

// WhoAmI resolves a session credential to an identity
func (g *IdentityGateway) WhoAmI(ctx context.Context, credential string) (*domain.Identity, error) {
	identity, err := g.resolver.WhoAmI(ctx, credential)
	if err != nil {
		g.logger.Debug("session resolution failed", "error", err)
		return nil, err
	}

	g.logger.Debug("session resolved",
		"user_id", identity.ID,
		"session_id", identity.SessionID)

	return identity, nil
}
