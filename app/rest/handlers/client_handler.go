package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// ClientHandler handles client directory HTTP requests. All routes are
// admin-only; the gate enforces the role before these run.
type ClientHandler struct {
	clientUsecase port.ClientUsecase
	logger        *slog.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientUsecase port.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
		logger:        logger,
	}
}

// CreateClient registers a new client
// @Summary Create client
// @Tags client
// @Accept json
// @Produce json
// @Param body body domain.CreateClientRequest true "Client"
// @Success 201 {object} domain.Client
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/clients [post]
func (h *ClientHandler) CreateClient(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	client, err := h.clientUsecase.CreateClient(ctx, &req)
	if err != nil {
		h.logger.Error("failed to create client", "slug", req.Slug, "error", err)
		return h.renderClientError(c, err)
	}

	return c.JSON(http.StatusCreated, client)
}

// GetClient returns a client by id
// @Summary Get client
// @Tags client
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} domain.Client
// @Failure 404 {object} ErrorResponse
// @Router /v1/clients/{clientId} [get]
func (h *ClientHandler) GetClient(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, err := pathUUID(c, "clientId")
	if err != nil {
		return err
	}

	client, err := h.clientUsecase.GetClientByID(ctx, clientID)
	if err != nil {
		return h.renderClientError(c, err)
	}

	return c.JSON(http.StatusOK, client)
}

// ListClients lists clients in the directory
// @Summary List clients
// @Tags client
// @Produce json
// @Success 200 {array} domain.Client
// @Router /v1/clients [get]
func (h *ClientHandler) ListClients(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := paginationParams(c)
	clients, err := h.clientUsecase.ListClients(ctx, limit, offset)
	if err != nil {
		h.logger.Error("failed to list clients", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, clients)
}

// SuspendClient suspends a client
// @Summary Suspend client
// @Tags client
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/clients/{clientId}/suspend [post]
func (h *ClientHandler) SuspendClient(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, err := pathUUID(c, "clientId")
	if err != nil {
		return err
	}

	if err := h.clientUsecase.SuspendClient(ctx, clientID); err != nil {
		h.logger.Error("failed to suspend client", "client_id", clientID, "error", err)
		return h.renderClientError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "client suspended"})
}

// ActivateClient re-activates a suspended client
// @Summary Activate client
// @Tags client
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/clients/{clientId}/activate [post]
func (h *ClientHandler) ActivateClient(c echo.Context) error {
	ctx := c.Request().Context()

	clientID, err := pathUUID(c, "clientId")
	if err != nil {
		return err
	}

	if err := h.clientUsecase.ActivateClient(ctx, clientID); err != nil {
		h.logger.Error("failed to activate client", "client_id", clientID, "error", err)
		return h.renderClientError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "client activated"})
}

func (h *ClientHandler) renderClientError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrClientNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "client not found"})
	case errors.Is(err, domain.ErrSlugTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "slug already in use"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
