package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// AuthUseCase implements the request authorization gate: session
// resolution, profile lookup, grant-validated client switching, audit
// and tenant propagation.
type AuthUseCase struct {
	identityGateway port.IdentityGateway
	profileRepo     port.ProfileRepository
	grantRepo       port.GrantRepository
	switchLedger    port.SwitchLedger
	tenantSetter    port.TenantContextSetter
	auditEnabled    bool
	logger          *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(
	identityGateway port.IdentityGateway,
	profileRepo port.ProfileRepository,
	grantRepo port.GrantRepository,
	switchLedger port.SwitchLedger,
	tenantSetter port.TenantContextSetter,
	auditEnabled bool,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		identityGateway: identityGateway,
		profileRepo:     profileRepo,
		grantRepo:       grantRepo,
		switchLedger:    switchLedger,
		tenantSetter:    tenantSetter,
		auditEnabled:    auditEnabled,
		logger:          logger.With("component", "auth_usecase"),
	}
}

// Authenticate resolves a session credential to a profile-backed base
// context. A session whose identity has no profile row fails exactly
// like a missing session: the caller cannot distinguish the two.
func (uc *AuthUseCase) Authenticate(ctx context.Context, credential string) (*domain.AuthContext, error) {
	identity, err := uc.identityGateway.WhoAmI(ctx, credential)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.GetByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			uc.logger.Warn("valid session has no profile", "user_id", identity.ID)
		}
		return nil, err
	}

	authCtx := &domain.AuthContext{
		UserID:       profile.ID,
		Email:        profile.Email,
		Role:         profile.Role,
		HomeClientID: profile.ClientID,
	}

	return authCtx, nil
}

// ResolveClientContext validates a requested client switch against
// the caller's grants and returns a context with the active client
// set on success. It never fails the request: client-role callers and
// callers without a matching grant simply proceed with no active
// client, and the switch is not audited.
func (uc *AuthUseCase) ResolveClientContext(ctx context.Context, authCtx domain.AuthContext, requestedClientID uuid.UUID, meta port.RequestMeta) domain.AuthContext {
	if requestedClientID == uuid.Nil {
		return authCtx
	}

	// Client accounts are pinned to their home client.
	if !authCtx.Role.CanHoldGrants() {
		uc.logger.Warn("client-role caller requested a client switch",
			"user_id", authCtx.UserID,
			"requested_client_id", requestedClientID)
		return authCtx
	}

	grant, err := uc.grantRepo.Get(ctx, authCtx.UserID, requestedClientID)
	if err != nil {
		if errors.Is(err, domain.ErrGrantNotFound) {
			uc.logger.Warn("client switch requested without grant",
				"user_id", authCtx.UserID,
				"requested_client_id", requestedClientID)
		} else {
			uc.logger.Error("grant lookup failed, proceeding without active client",
				"user_id", authCtx.UserID,
				"requested_client_id", requestedClientID,
				"error", err)
		}
		return authCtx
	}

	authCtx.ActiveClientID = &grant.ClientID

	uc.auditSwitch(ctx, authCtx.UserID, grant.ClientID, meta)

	return authCtx
}

// auditSwitch appends the switch event without blocking the request.
// Failures are logged and swallowed.
func (uc *AuthUseCase) auditSwitch(ctx context.Context, userID, clientID uuid.UUID, meta port.RequestMeta) {
	if !uc.auditEnabled {
		return
	}

	event, err := domain.NewClientSwitchEvent(userID, clientID, meta.IPAddress, meta.UserAgent)
	if err != nil {
		uc.logger.Error("failed to build switch event", "error", err)
		return
	}

	// Detach from the request lifetime: the append must survive the
	// response being written first.
	appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)

	go func() {
		defer cancel()
		if err := uc.switchLedger.Append(appendCtx, event); err != nil {
			uc.logger.Error("failed to append switch event",
				"user_id", userID,
				"client_id", clientID,
				"error", err)
		}
	}()
}

// PropagateClientContext informs the data layer of the effective
// client for row scoping. Best-effort: a failure is logged and the
// request proceeds, since every query filters by client id anyway.
func (uc *AuthUseCase) PropagateClientContext(ctx context.Context, authCtx domain.AuthContext) {
	clientID, ok := authCtx.ClientID()
	if !ok {
		return
	}

	if err := uc.tenantSetter.SetEffectiveClient(ctx, clientID); err != nil {
		uc.logger.Warn("failed to propagate client context",
			"user_id", authCtx.UserID,
			"client_id", clientID,
			"error", err)
	}
}
