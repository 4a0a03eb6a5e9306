package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
	"backoffice-api/app/utils/validator"
)

// InquiryHandler handles inquiry HTTP requests. Submission is public
// (marketing sites post the contact form here); triage routes run
// behind the gate.
type InquiryHandler struct {
	inquiryUsecase port.InquiryUsecase
	clientUsecase  port.ClientUsecase
	logger         *slog.Logger
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryUsecase port.InquiryUsecase, clientUsecase port.ClientUsecase, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{
		inquiryUsecase: inquiryUsecase,
		clientUsecase:  clientUsecase,
		logger:         logger,
	}
}

// SubmitInquiry accepts a contact-form submission for a client's
// marketing site. Unauthenticated; the client is addressed by slug so
// the sites never carry internal ids.
// @Summary Submit inquiry
// @Tags inquiry
// @Accept json
// @Produce json
// @Param slug path string true "Client slug"
// @Param body body domain.SubmitInquiryRequest true "Inquiry"
// @Success 201 {object} domain.Inquiry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/public/clients/{slug}/inquiries [post]
func (h *InquiryHandler) SubmitInquiry(c echo.Context) error {
	ctx := c.Request().Context()

	slug := c.Param("slug")
	if !validator.IsValidSlug(slug) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "client not found"})
	}

	client, err := h.clientUsecase.GetClientBySlug(ctx, slug)
	if err != nil {
		return h.renderInquiryError(c, err)
	}

	var req domain.SubmitInquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	inquiry, err := h.inquiryUsecase.SubmitInquiry(ctx, client.ID, &req)
	if err != nil {
		h.logger.Error("failed to submit inquiry", "client_id", client.ID, "error", err)
		return h.renderInquiryError(c, err)
	}

	return c.JSON(http.StatusCreated, inquiry)
}

// GetInquiry returns an inquiry belonging to the active client
// @Summary Get inquiry
// @Tags inquiry
// @Produce json
// @Param inquiryId path string true "Inquiry ID"
// @Success 200 {object} domain.Inquiry
// @Failure 404 {object} ErrorResponse
// @Router /v1/inquiries/{inquiryId} [get]
func (h *InquiryHandler) GetInquiry(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	inquiryID, err := pathUUID(c, "inquiryId")
	if err != nil {
		return err
	}

	inquiry, err := h.inquiryUsecase.GetInquiry(ctx, clientID, inquiryID)
	if err != nil {
		return h.renderInquiryError(c, err)
	}

	return c.JSON(http.StatusOK, inquiry)
}

// ListInquiries lists the active client's inquiries, newest first
// @Summary List inquiries
// @Tags inquiry
// @Produce json
// @Success 200 {array} domain.Inquiry
// @Failure 400 {object} ErrorResponse
// @Router /v1/inquiries [get]
func (h *InquiryHandler) ListInquiries(c echo.Context) error {
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
	inquiries, err := h.inquiryUsecase.ListInquiries(ctx, clientID, limit, offset)
	if err != nil {
		h.logger.Error("failed to list inquiries", "client_id", clientID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, inquiries)
}

// UpdateInquiryStatusRequest changes an inquiry's triage status
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress closed"`
}

// UpdateInquiryStatus moves an inquiry through triage
// @Summary Update inquiry status
// @Tags inquiry
// @Accept json
// @Produce json
// @Param inquiryId path string true "Inquiry ID"
// @Param body body UpdateInquiryStatusRequest true "Status"
// @Success 200 {object} domain.Inquiry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/inquiries/{inquiryId}/status [put]
func (h *InquiryHandler) UpdateInquiryStatus(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	inquiryID, err := pathUUID(c, "inquiryId")
	if err != nil {
		return err
	}

	var req UpdateInquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	inquiry, err := h.inquiryUsecase.UpdateInquiryStatus(ctx, clientID, inquiryID, domain.InquiryStatus(req.Status))
	if err != nil {
		h.logger.Error("failed to update inquiry status",
			"client_id", clientID,
			"inquiry_id", inquiryID,
			"error", err)
		return h.renderInquiryError(c, err)
	}

	return c.JSON(http.StatusOK, inquiry)
}

func (h *InquiryHandler) renderInquiryError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInquiryNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "inquiry not found"})
	case errors.Is(err, domain.ErrClientNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "client not found"})
	case errors.Is(err, domain.ErrClientSuspended):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "client not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
