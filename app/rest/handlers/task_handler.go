package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// TaskHandler handles task management HTTP requests
type TaskHandler struct {
	taskUsecase port.TaskUsecase
	logger      *slog.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskUsecase port.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
		logger:      logger,
	}
}

// CreateTask creates a task for the active client
// @Summary Create task
// @Tags task
// @Accept json
// @Produce json
// @Param body body domain.CreateTaskRequest true "Task"
// @Success 201 {object} domain.Task
// @Failure 400 {object} ErrorResponse
// @Router /v1/tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	var req domain.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	task, err := h.taskUsecase.CreateTask(ctx, clientID, authCtx.UserID, &req)
	if err != nil {
		h.logger.Error("failed to create task", "client_id", clientID, "error", err)
		return h.renderTaskError(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

// GetTask returns a task belonging to the active client
// @Summary Get task
// @Tags task
// @Produce json
// @Param taskId path string true "Task ID"
// @Success 200 {object} domain.Task
// @Failure 404 {object} ErrorResponse
// @Router /v1/tasks/{taskId} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		return err
	}

	task, err := h.taskUsecase.GetTask(ctx, clientID, taskID)
	if err != nil {
		return h.renderTaskError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// ListTasks lists the active client's tasks
// @Summary List tasks
// @Tags task
// @Produce json
// @Success 200 {array} domain.Task
// @Failure 400 {object} ErrorResponse
// @Router /v1/tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
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
	tasks, err := h.taskUsecase.ListTasks(ctx, clientID, limit, offset)
	if err != nil {
		h.logger.Error("failed to list tasks", "client_id", clientID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, tasks)
}

// UpdateTaskStatus moves a task between statuses
// @Summary Update task status
// @Tags task
// @Accept json
// @Produce json
// @Param taskId path string true "Task ID"
// @Param body body domain.UpdateTaskStatusRequest true "Status"
// @Success 200 {object} domain.Task
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/tasks/{taskId}/status [put]
func (h *TaskHandler) UpdateTaskStatus(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		return err
	}

	var req domain.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	task, err := h.taskUsecase.UpdateTaskStatus(ctx, clientID, taskID, domain.TaskStatus(req.Status))
	if err != nil {
		h.logger.Error("failed to update task status",
			"client_id", clientID,
			"task_id", taskID,
			"error", err)
		return h.renderTaskError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// AssignTask assigns a task to a user
// @Summary Assign task
// @Tags task
// @Produce json
// @Param taskId path string true "Task ID"
// @Param userId path string true "Assignee user ID"
// @Success 200 {object} domain.Task
// @Failure 404 {object} ErrorResponse
// @Router /v1/tasks/{taskId}/assign/{userId} [post]
func (h *TaskHandler) AssignTask(c echo.Context) error {
	ctx := c.Request().Context()

	authCtx, err := requestAuthContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized - Not authenticated"})
	}

	clientID, err := resolveClientScope(c, authCtx)
	if err != nil {
		return err
	}

	taskID, err := pathUUID(c, "taskId")
	if err != nil {
		return err
	}
	assigneeID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	task, err := h.taskUsecase.AssignTask(ctx, clientID, taskID, assigneeID)
	if err != nil {
		h.logger.Error("failed to assign task",
			"client_id", clientID,
			"task_id", taskID,
			"assignee_id", assigneeID,
			"error", err)
		return h.renderTaskError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) renderTaskError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "task not found"})
	case errors.Is(err, domain.ErrProfileNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "user profile not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
