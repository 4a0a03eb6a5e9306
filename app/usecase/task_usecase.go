package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// TaskUseCase implements client-scoped task management
type TaskUseCase struct {
	taskRepo port.TaskRepository
	logger   *slog.Logger
}

// NewTaskUseCase creates a new TaskUseCase instance
func NewTaskUseCase(taskRepo port.TaskRepository, logger *slog.Logger) *TaskUseCase {
	return &TaskUseCase{
		taskRepo: taskRepo,
		logger:   logger.With("component", "task_usecase"),
	}
}

// CreateTask creates an open task for the client
func (uc *TaskUseCase) CreateTask(ctx context.Context, clientID, creatorID uuid.UUID, req *domain.CreateTaskRequest) (*domain.Task, error) {
	task, err := domain.NewTask(clientID, creatorID, req.Title, req.Description, domain.TaskPriority(req.Priority))
	if err != nil {
		return nil, err
	}

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	uc.logger.Info("task created", "task_id", task.ID, "client_id", clientID)

	return task, nil
}

// GetTask retrieves a task within the client
func (uc *TaskUseCase) GetTask(ctx context.Context, clientID, taskID uuid.UUID) (*domain.Task, error) {
	return uc.taskRepo.GetByID(ctx, clientID, taskID)
}

// ListTasks lists the client's tasks with pagination
func (uc *TaskUseCase) ListTasks(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Task, error) {
	limit = normalizeLimit(limit)
	return uc.taskRepo.ListByClient(ctx, clientID, limit, offset)
}

// UpdateTaskStatus changes a task's status
func (uc *TaskUseCase) UpdateTaskStatus(ctx context.Context, clientID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
	task, err := uc.taskRepo.GetByID(ctx, clientID, taskID)
	if err != nil {
		return nil, err
	}

	if err := task.ChangeStatus(status); err != nil {
		return nil, err
	}

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// AssignTask assigns a task to a user
func (uc *TaskUseCase) AssignTask(ctx context.Context, clientID, taskID, assigneeID uuid.UUID) (*domain.Task, error) {
	task, err := uc.taskRepo.GetByID(ctx, clientID, taskID)
	if err != nil {
		return nil, err
	}

	if err := task.Assign(assigneeID); err != nil {
		return nil, err
	}

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	uc.logger.Info("task assigned",
		"task_id", taskID,
		"client_id", clientID,
		"assignee_id", assigneeID)

	return task, nil
}
