package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
)

// RequestMeta carries transport-level facts the gate forwards to the
// audit ledger.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// AuthUsecase defines the gate's business logic interface
type AuthUsecase interface {
	// Authenticate resolves a session credential to a profile-backed
	// base context. A valid session with no profile fails exactly
	// like a missing session.
	Authenticate(ctx context.Context, credential string) (*domain.AuthContext, error)

	// ResolveClientContext validates a requested client switch
	// against the caller's grants. A missing or unverifiable grant
	// leaves the active client unset; it never fails the request.
	ResolveClientContext(ctx context.Context, authCtx domain.AuthContext, requestedClientID uuid.UUID, meta RequestMeta) domain.AuthContext

	// PropagateClientContext informs the data layer of the effective
	// client for row scoping. Best-effort: failures are logged only.
	PropagateClientContext(ctx context.Context, authCtx domain.AuthContext)
}

// IdentityGateway defines the identity-provider interface consumed by
// the gate
type IdentityGateway interface {
	// WhoAmI resolves a session credential (cookie header or bearer
	// token) to an identity.
	WhoAmI(ctx context.Context, credential string) (*domain.Identity, error)
}

// ProfileUsecase defines profile administration business logic
type ProfileUsecase interface {
	// GetProfile returns the profile for an identity-provider account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)

	// CreateProfile registers a back-office profile for an existing
	// identity-provider account. The id must be the Kratos identity id.
	CreateProfile(ctx context.Context, id uuid.UUID, email, name string, role domain.Role, clientID *uuid.UUID) (*domain.Profile, error)

	// ChangeRole updates a profile's role.
	ChangeRole(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.Profile, error)

	// ListProfilesByClient returns the profiles homed at a client.
	ListProfilesByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Profile, error)
}

// ProfileRepository defines profile data access
type ProfileRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) error
	Update(ctx context.Context, profile *domain.Profile) error
	ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Profile, error)
}
