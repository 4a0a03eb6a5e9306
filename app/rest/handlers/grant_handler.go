package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// GrantHandler handles client-grant administration HTTP requests.
// Admin-only; the gate enforces the role.
type GrantHandler struct {
	grantUsecase port.GrantUsecase
	logger       *slog.Logger
}

// NewGrantHandler creates a new grant handler
func NewGrantHandler(grantUsecase port.GrantUsecase, logger *slog.Logger) *GrantHandler {
	return &GrantHandler{
		grantUsecase: grantUsecase,
		logger:       logger,
	}
}

// GrantClientRequest permits a user to act as a client
type GrantClientRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid4"`
	ClientID string `json:"client_id" validate:"required,uuid4"`
}

// GrantClient creates a grant allowing a user to act as a client
// @Summary Grant client access
// @Tags grant
// @Accept json
// @Produce json
// @Param body body GrantClientRequest true "Grant"
// @Success 201 {object} domain.ClientGrant
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/grants [post]
func (h *GrantHandler) GrantClient(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	var req GrantClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id format"})
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client_id format"})
	}

	grant, err := h.grantUsecase.GrantClient(ctx, userID, clientID, authCtx.UserID)
	if err != nil {
		h.logger.Error("failed to create grant",
			"user_id", userID,
			"client_id", clientID,
			"error", err)
		return h.renderGrantError(c, err)
	}

	return c.JSON(http.StatusCreated, grant)
}

// RevokeClient removes a user's grant for a client
// @Summary Revoke client access
// @Tags grant
// @Produce json
// @Param userId path string true "User ID"
// @Param clientId path string true "Client ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/grants/{userId}/{clientId} [delete]
func (h *GrantHandler) RevokeClient(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}
	clientID, err := pathUUID(c, "clientId")
	if err != nil {
		return err
	}

	if err := h.grantUsecase.RevokeClient(ctx, userID, clientID); err != nil {
		h.logger.Error("failed to revoke grant",
			"user_id", userID,
			"client_id", clientID,
			"error", err)
		return h.renderGrantError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "grant revoked"})
}

// ListGrants lists all grants held by a user
// @Summary List grants for a user
// @Tags grant
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} domain.ClientGrant
// @Router /v1/grants/{userId} [get]
func (h *GrantHandler) ListGrants(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	grants, err := h.grantUsecase.ListGrants(ctx, userID)
	if err != nil {
		h.logger.Error("failed to list grants", "user_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, grants)
}

func (h *GrantHandler) renderGrantError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "user profile not found"})
	case errors.Is(err, domain.ErrClientNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "client not found"})
	case errors.Is(err, domain.ErrGrantNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "client grant not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "role cannot hold client grants"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
