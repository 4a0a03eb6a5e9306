package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"backoffice-api/app/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// requestAuthContext extracts the authorization context installed by
// the gate. Routes behind RequireAuth always carry one; its absence
// means the route was wired without the gate.
func requestAuthContext(c echo.Context) (domain.AuthContext, error) {
	return domain.AuthContextFrom(c.Request().Context())
}

// resolveClientScope resolves the tenant a handler operates on. An
// employee or admin without a grant-validated switch gets a 400; a
// client account falls back to its home client. A client that names a
// foreign tenant explicitly is rejected with 403 rather than silently
// redirected to its own.
func resolveClientScope(c echo.Context, authCtx domain.AuthContext) (uuid.UUID, error) {
	clientID, err := authCtx.RequireClientID()
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, domain.ErrClientContextRequired.Error())
	}

	if raw := c.QueryParam("clientId"); raw != "" && authCtx.Role == domain.RoleClient {
		if requested, perr := uuid.Parse(raw); perr == nil && requested != clientID {
			return uuid.Nil, echo.NewHTTPError(http.StatusForbidden, domain.ErrClientMismatch.Error())
		}
	}

	return clientID, nil
}

// paginationParams reads limit/offset query parameters with defaults.
// Zero, negative, and oversized values clamp here so no handler can
// pass a bad page window downstream.
func paginationParams(c echo.Context) (limit, offset int) {
	limit = 20
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 100 {
		limit = 100
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}

// pathUUID parses a UUID path parameter
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" format")
	}
	return id, nil
}
