package port

//go:generate mockgen -source=grant_port.go -destination=../mocks/mock_grant_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
)

// GrantRepository defines client-grant data access. The gate only
// reads grants; administration flows create and delete them.
type GrantRepository interface {
	Get(ctx context.Context, userID, clientID uuid.UUID) (*domain.ClientGrant, error)
	Create(ctx context.Context, grant *domain.ClientGrant) error
	Delete(ctx context.Context, userID, clientID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ClientGrant, error)
}

// SwitchLedger appends client-switch audit records. Append-only: the
// request path never reads events back.
type SwitchLedger interface {
	Append(ctx context.Context, event *domain.ClientSwitchEvent) error
}

// TenantContextSetter propagates the effective client to the data
// layer for downstream row scoping.
type TenantContextSetter interface {
	SetEffectiveClient(ctx context.Context, clientID uuid.UUID) error
}

// GrantUsecase defines grant administration business logic
type GrantUsecase interface {
	GrantClient(ctx context.Context, userID, clientID, grantedBy uuid.UUID) (*domain.ClientGrant, error)
	RevokeClient(ctx context.Context, userID, clientID uuid.UUID) error
	ListGrants(ctx context.Context, userID uuid.UUID) ([]*domain.ClientGrant, error)
}
