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

// ProfileHandler handles profile management HTTP requests
type ProfileHandler struct {
	profileUsecase port.ProfileUsecase
	logger         *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase port.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		logger:         logger,
	}
}

// CreateProfileRequest registers a back-office profile for a Kratos
// identity
type CreateProfileRequest struct {
	ID       string `json:"id" validate:"required,uuid4"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=100"`
	Role     string `json:"role" validate:"required,role"`
	ClientID string `json:"client_id" validate:"omitempty,uuid4"`
}

// ChangeRoleRequest changes a profile's role
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

// GetOwnProfile returns the caller's own profile. Needs no tenant
// context; any authenticated role may call it.
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Router /v1/profile [get]
func (h *ProfileHandler) GetOwnProfile(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	profile, err := h.profileUsecase.GetProfile(ctx, authCtx.UserID)
	if err != nil {
		h.logger.Error("failed to load own profile", "user_id", authCtx.UserID, "error", err)
		return h.renderProfileError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// CreateProfile registers a profile for an identity-provider account
// @Summary Create profile
// @Tags profile
// @Accept json
// @Produce json
// @Param body body CreateProfileRequest true "Profile"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/profiles [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	userID, err := uuid.Parse(req.ID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id format"})
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	var clientID *uuid.UUID
	if req.ClientID != "" {
		parsed, err := uuid.Parse(req.ClientID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid client_id format"})
		}
		clientID = &parsed
	}

	profile, err := h.profileUsecase.CreateProfile(ctx, userID, req.Email, req.Name, role, clientID)
	if err != nil {
		h.logger.Error("failed to create profile", "user_id", userID, "error", err)
		return h.renderProfileError(c, err)
	}

	return c.JSON(http.StatusCreated, profile)
}

// ChangeRole updates a profile's role
// @Summary Change profile role
// @Tags profile
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body ChangeRoleRequest true "Role"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/profiles/{userId}/role [put]
func (h *ProfileHandler) ChangeRole(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	var req ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	profile, err := h.profileUsecase.ChangeRole(ctx, userID, role)
	if err != nil {
		h.logger.Error("failed to change profile role", "user_id", userID, "error", err)
		return h.renderProfileError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// ListProfiles lists the profiles homed at the effective client
// @Summary List profiles for the active client
// @Tags profile
// @Produce json
// @Success 200 {array} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Router /v1/profiles [get]
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	limit, offset := paginationParams(c)
	profiles, err := h.profileUsecase.ListProfilesByClient(ctx, clientID, limit, offset)
	if err != nil {
		h.logger.Error("failed to list profiles", "client_id", clientID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) renderProfileError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "user profile not found"})
	case errors.Is(err, domain.ErrClientNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "client not found"})
	case errors.Is(err, domain.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "profile already exists"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
