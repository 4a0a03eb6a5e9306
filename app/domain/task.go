package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the progress of a task
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// TaskPriority represents the urgency of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents a unit of back-office work scoped to a client
type Task struct {
	ID          uuid.UUID    `json:"id"`
	ClientID    uuid.UUID    `json:"client_id"`
	CreatorID   uuid.UUID    `json:"creator_id"`
	AssigneeID  *uuid.UUID   `json:"assignee_id,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates an open task with validation
func NewTask(clientID, creatorID uuid.UUID, title, description string, priority TaskPriority) (*Task, error) {
	if clientID == uuid.Nil {
		return nil, fmt.Errorf("client id is required")
	}

	if creatorID == uuid.Nil {
		return nil, fmt.Errorf("creator id is required")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	if priority == "" {
		priority = TaskPriorityMedium
	}

	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
	default:
		return nil, fmt.Errorf("invalid task priority: %s", priority)
	}

	now := time.Now()

	return &Task{
		ID:          uuid.New(),
		ClientID:    clientID,
		CreatorID:   creatorID,
		Title:       title,
		Description: description,
		Status:      TaskStatusOpen,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ChangeStatus changes the task status with validation
func (t *Task) ChangeStatus(status TaskStatus) error {
	switch status {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusDone:
		t.Status = status
		t.UpdatedAt = time.Now()
		return nil
	}
	return fmt.Errorf("invalid task status: %s", status)
}

// Assign assigns the task to a user
func (t *Task) Assign(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("assignee id is required")
	}

	t.AssigneeID = &userID
	t.UpdatedAt = time.Now()
	return nil
}

// CreateTaskRequest represents task creation request
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskStatusRequest represents a task status change
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress done"`
}
