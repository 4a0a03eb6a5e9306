package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
	apperrors "backoffice-api/app/utils/errors"
)

// AuthMiddleware is the request authorization gate. It authenticates
// the caller, enforces route roles, resolves a grant-validated active
// client, and hands the wrapped handler an immutable authorization
// context. Handlers behind it only ever run fully authorized.
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_middleware"),
	}
}

// RequireAuth gates a route. With no roles listed, any authenticated
// caller passes; otherwise the caller's role must be one of them.
func (m *AuthMiddleware) RequireAuth(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			credential := m.extractCredential(c)
			if credential == "" {
				return errorJSON(c, http.StatusUnauthorized, "Unauthorized - Not authenticated")
			}

			authCtx, err := m.authUsecase.Authenticate(ctx, credential)
			if err != nil {
				return m.renderAuthError(c, err)
			}

			if len(allowedRoles) > 0 && !roleAllowed(authCtx.Role, allowedRoles) {
				return errorJSON(c, http.StatusForbidden,
					"Unauthorized - Requires one of these roles: "+roleList(allowedRoles))
			}

			// An unparseable clientId is treated like an absent one;
			// the switch is simply not attempted.
			requestedClientID := uuid.Nil
			if raw := c.QueryParam("clientId"); raw != "" {
				if parsed, err := uuid.Parse(raw); err == nil {
					requestedClientID = parsed
				} else {
					m.logger.Warn("ignoring malformed clientId parameter",
						"user_id", authCtx.UserID,
						"client_id", raw)
				}
			}

			resolved := m.authUsecase.ResolveClientContext(ctx, *authCtx, requestedClientID, port.RequestMeta{
				IPAddress: c.RealIP(),
				UserAgent: c.Request().UserAgent(),
			})

			m.authUsecase.PropagateClientContext(ctx, resolved)

			c.SetRequest(c.Request().WithContext(domain.WithAuthContext(ctx, resolved)))

			return next(c)
		}
	}
}

// renderAuthError maps gate failures to the wire contract. Unexpected
// errors collapse to a generic 500; detail stays in the logs.
func (m *AuthMiddleware) renderAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return errorJSON(c, http.StatusUnauthorized, "User profile not found")
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrSessionInactive):
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized - Not authenticated")
	default:
		m.logger.Error("authentication failed unexpectedly",
			"error", err,
			"code", apperrors.GetErrorCode(err))
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
}

// extractCredential pulls the session credential from the request.
// Browser callers send the Kratos session cookie; API callers send a
// bearer token or X-Session-Token header.
func (m *AuthMiddleware) extractCredential(c echo.Context) string {
	if cookieHeader := c.Request().Header.Get("Cookie"); cookieHeader != "" && strings.Contains(cookieHeader, "ory_kratos_session") {
		return cookieHeader
	}

	if auth := c.Request().Header.Get("Authorization"); auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

func roleList(roles []domain.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}

// errorJSON writes the error body every failure path shares
func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}
