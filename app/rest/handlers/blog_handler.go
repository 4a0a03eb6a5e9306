package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// BlogHandler handles blog management HTTP requests. Every route
// operates on the tenant resolved by the gate.
type BlogHandler struct {
	blogUsecase port.BlogUsecase
	logger      *slog.Logger
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogUsecase port.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
		logger:      logger,
	}
}

// CreateBlogPost creates a draft post for the active client
// @Summary Create blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param body body domain.CreateBlogPostRequest true "Post"
// @Success 201 {object} domain.BlogPost
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/blog [post]
func (h *BlogHandler) CreateBlogPost(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	var req domain.CreateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	post, err := h.blogUsecase.CreateBlogPost(ctx, clientID, authCtx.UserID, &req)
	if err != nil {
		h.logger.Error("failed to create blog post",
			"client_id", clientID,
			"error", err)
		return h.renderBlogError(c, err)
	}

	return c.JSON(http.StatusCreated, post)
}

// GetBlogPost returns a post belonging to the active client
// @Summary Get blog post
// @Tags blog
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} domain.BlogPost
// @Failure 404 {object} ErrorResponse
// @Router /v1/blog/{postId} [get]
func (h *BlogHandler) GetBlogPost(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	postID, err := pathUUID(c, "postId")
	if err != nil {
		return err
	}

	post, err := h.blogUsecase.GetBlogPost(ctx, clientID, postID)
	if err != nil {
		return h.renderBlogError(c, err)
	}

	return c.JSON(http.StatusOK, post)
}

// ListBlogPosts lists the active client's posts
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Success 200 {array} domain.BlogPost
// @Failure 400 {object} ErrorResponse
// @Router /v1/blog [get]
func (h *BlogHandler) ListBlogPosts(c echo.Context) error {
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
	posts, err := h.blogUsecase.ListBlogPosts(ctx, clientID, limit, offset)
	if err != nil {
		h.logger.Error("failed to list blog posts", "client_id", clientID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, posts)
}

// PublishBlogPost publishes a draft post
// @Summary Publish blog post
// @Tags blog
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} domain.BlogPost
// @Failure 404 {object} ErrorResponse
// @Router /v1/blog/{postId}/publish [post]
func (h *BlogHandler) PublishBlogPost(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	postID, err := pathUUID(c, "postId")
	if err != nil {
		return err
	}

	post, err := h.blogUsecase.PublishBlogPost(ctx, clientID, postID)
	if err != nil {
		h.logger.Error("failed to publish blog post",
			"client_id", clientID,
			"post_id", postID,
			"error", err)
		return h.renderBlogError(c, err)
	}

	return c.JSON(http.StatusOK, post)
}

// DeleteBlogPost removes a post belonging to the active client
// @Summary Delete blog post
// @Tags blog
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/blog/{postId} [delete]
func (h *BlogHandler) DeleteBlogPost(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	postID, err := pathUUID(c, "postId")
	if err != nil {
		return err
	}

	if err := h.blogUsecase.DeleteBlogPost(ctx, clientID, postID); err != nil {
		h.logger.Error("failed to delete blog post",
			"client_id", clientID,
			"post_id", postID,
			"error", err)
		return h.renderBlogError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "blog post deleted"})
}

func (h *BlogHandler) renderBlogError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrBlogPostNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "blog post not found"})
	case errors.Is(err, domain.ErrSlugTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "slug already in use"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
