package kratos

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// IdentityAdapter adapts the Kratos client to port.IdentityGateway.
// It resolves session credentials through the whoami endpoint and
// reduces the provider session to the handful of fields the gate
// consumes.
type IdentityAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewIdentityAdapter creates a new identity adapter
func NewIdentityAdapter(client *Client, logger *slog.Logger) port.IdentityGateway {
	return &IdentityAdapter{
		client: client,
		logger: logger.With("component", "identity_adapter"),
	}
}

// WhoAmI resolves a session credential to an identity. The credential
// is either a raw Cookie header (browser callers) or a bare session
// token (API callers); a cookie header always contains '='.
func (a *IdentityAdapter) WhoAmI(ctx context.Context, credential string) (*domain.Identity, error) {
	if credential == "" {
		return nil, domain.ErrNotAuthenticated
	}

	req := a.client.PublicAPI().FrontendAPI.ToSession(ctx)
	if strings.Contains(credential, "=") {
		req = req.Cookie(credential)
	} else {
		req = req.XSessionToken(credential)
	}

	session, httpResp, err := req.Execute()
	if err != nil {
		a.logger.Debug("whoami failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, transformSessionError(err, httpResp)
	}

	identity, err := sessionToIdentity(session)
	if err != nil {
		a.logger.Error("whoami returned unusable session", "error", err)
		return nil, err
	}

	if !identity.IsValid() {
		if !identity.Active {
			return nil, domain.ErrSessionInactive
		}
		return nil, domain.ErrSessionExpired
	}

	return identity, nil
}

// sessionToIdentity reduces a Kratos session to a domain identity
func sessionToIdentity(session *kratosclient.Session) (*domain.Identity, error) {
	if session == nil || session.Identity == nil {
		return nil, domain.ErrNotAuthenticated
	}

	id, err := uuid.Parse(session.Identity.Id)
	if err != nil {
		return nil, domain.ErrNotAuthenticated
	}

	identity := &domain.Identity{
		ID:        id,
		SessionID: session.Id,
		Email:     extractEmail(session.Identity),
	}

	if session.Active != nil {
		identity.Active = *session.Active
	}
	if session.ExpiresAt != nil {
		identity.ExpiresAt = *session.ExpiresAt
	}

	return identity, nil
}

// extractEmail pulls the email trait out of the identity schema
func extractEmail(identity *kratosclient.Identity) string {
	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return ""
	}

	if email, ok := traits["email"].(string); ok {
		return email
	}

	return ""
}
