package domain

import (
	"context"

	"github.com/google/uuid"
)

// AuthContext is the per-request authorization context produced by the
// gate. It is immutable once built and lives only for the duration of
// one request; downstream code receives it as a value, never by
// mutating the request.
type AuthContext struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`

	// HomeClientID is the profile's own client, set for client
	// accounts only.
	HomeClientID *uuid.UUID `json:"client_id,omitempty"`

	// ActiveClientID is the grant-validated client the caller is
	// acting as for this request. Only the gate sets it, and only
	// from a validated grant, so a client account can never carry a
	// foreign active client.
	ActiveClientID *uuid.UUID `json:"active_client_id,omitempty"`
}

// ClientID resolves the effective client for data access: the active
// client if a switch was validated, otherwise the home client for
// client accounts. The boolean reports whether any client could be
// resolved.
func (a AuthContext) ClientID() (uuid.UUID, bool) {
	if a.ActiveClientID != nil {
		return *a.ActiveClientID, true
	}
	if a.Role == RoleClient && a.HomeClientID != nil {
		return *a.HomeClientID, true
	}
	return uuid.Nil, false
}

// RequireClientID resolves the effective client or fails with
// ErrClientContextRequired. Handlers that operate on client-owned rows
// call this and translate the error to a 400 response.
func (a AuthContext) RequireClientID() (uuid.UUID, error) {
	clientID, ok := a.ClientID()
	if !ok {
		return uuid.Nil, ErrClientContextRequired
	}
	return clientID, nil
}

type authContextKey struct{}

// WithAuthContext returns a context carrying the authorization context.
func WithAuthContext(ctx context.Context, authCtx AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey{}, authCtx)
}

// AuthContextFrom extracts the authorization context set by the gate.
func AuthContextFrom(ctx context.Context) (AuthContext, error) {
	authCtx, ok := ctx.Value(authContextKey{}).(AuthContext)
	if !ok {
		return AuthContext{}, ErrNotAuthenticated
	}
	return authCtx, nil
}
