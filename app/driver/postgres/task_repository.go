package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"backoffice-api/app/domain"
	"backoffice-api/app/port"
)

// TaskRepository implements port.TaskRepository for PostgreSQL
type TaskRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTaskRepository creates a new PostgreSQL task repository
func NewTaskRepository(db DatabaseIface, logger *slog.Logger) port.TaskRepository {
	return &TaskRepository{
		db:     db,
		logger: logger.With("component", "task_repository"),
	}
}

const taskColumns = `id, client_id, creator_id, assignee_id, title, description, status, priority, due_date, created_at, updated_at`

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (
			id, client_id, creator_id, assignee_id, title, description, status, priority, due_date, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`

	_, err := r.db.Exec(ctx, query,
		task.ID,
		task.ClientID,
		task.CreatorID,
		task.AssigneeID,
		task.Title,
		nullIfEmpty(task.Description),
		string(task.Status),
		string(task.Priority),
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to create task", "task_id", task.ID, "error", err)
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID retrieves a task by ID within a client
func (r *TaskRepository) GetByID(ctx context.Context, clientID, taskID uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE client_id = $1 AND id = $2`

	var task domain.Task
	var description *string
	var statusStr, priorityStr string

	err := r.db.QueryRow(ctx, query, clientID, taskID).Scan(
		&task.ID,
		&task.ClientID,
		&task.CreatorID,
		&task.AssigneeID,
		&task.Title,
		&description,
		&statusStr,
		&priorityStr,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if description != nil {
		task.Description = *description
	}
	task.Status = domain.TaskStatus(statusStr)
	task.Priority = domain.TaskPriority(priorityStr)

	return &task, nil
}

// Update updates a task
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET assignee_id = $3, title = $4, description = $5, status = $6, priority = $7, due_date = $8, updated_at = $9
		WHERE client_id = $1 AND id = $2`

	result, err := r.db.Exec(ctx, query,
		task.ClientID,
		task.ID,
		task.AssigneeID,
		task.Title,
		nullIfEmpty(task.Description),
		string(task.Status),
		string(task.Priority),
		task.DueDate,
		task.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to update task", "task_id", task.ID, "error", err)
		return fmt.Errorf("failed to update task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// ListByClient lists tasks for a client with pagination
func (r *TaskRepository) ListByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE client_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		r.logger.Error("failed to list tasks", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var task domain.Task
		var description *string
		var statusStr, priorityStr string

		if err := rows.Scan(
			&task.ID,
			&task.ClientID,
			&task.CreatorID,
			&task.AssigneeID,
			&task.Title,
			&description,
			&statusStr,
			&priorityStr,
			&task.DueDate,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}

		if description != nil {
			task.Description = *description
		}
		task.Status = domain.TaskStatus(statusStr)
		task.Priority = domain.TaskPriority(priorityStr)
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}
