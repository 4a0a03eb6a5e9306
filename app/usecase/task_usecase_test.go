package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backoffice-api/app/domain"
	mock_port "backoffice-api/app/mocks"
)

func newTaskUsecase(t *testing.T) (*TaskUseCase, *mock_port.MockTaskRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	taskRepo := mock_port.NewMockTaskRepository(ctrl)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	return NewTaskUseCase(taskRepo, logger), taskRepo
}

func TestTaskUseCase_CreateTask(t *testing.T) {
	clientID := uuid.New()
	creatorID := uuid.New()

	t.Run("creates an open task with default priority", func(t *testing.T) {
		uc, taskRepo := newTaskUsecase(t)

		taskRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		task, err := uc.CreateTask(context.Background(), clientID, creatorID, &domain.CreateTaskRequest{
			Title:       "Refresh hero imagery",
			Description: "New photos arrive Friday.",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusOpen, task.Status)
		assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
		assert.Equal(t, clientID, task.ClientID)
		assert.Equal(t, creatorID, task.CreatorID)
		assert.Nil(t, task.AssigneeID)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		uc, _ := newTaskUsecase(t)

		_, err := uc.CreateTask(context.Background(), clientID, creatorID, &domain.CreateTaskRequest{
			Title: "   ",
		})

		require.Error(t, err)
	})
}

func TestTaskUseCase_UpdateTaskStatus(t *testing.T) {
	clientID := uuid.New()
	creatorID := uuid.New()

	t.Run("moves a task to in_progress", func(t *testing.T) {
		uc, taskRepo := newTaskUsecase(t)

		existing, err := domain.NewTask(clientID, creatorID, "Draft newsletter", "", domain.TaskPriorityHigh)
		require.NoError(t, err)

		taskRepo.EXPECT().
			GetByID(gomock.Any(), clientID, existing.ID).
			Return(existing, nil)
		taskRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *domain.Task) error {
				assert.Equal(t, domain.TaskStatusInProgress, task.Status)
				return nil
			})

		task, err := uc.UpdateTaskStatus(context.Background(), clientID, existing.ID, domain.TaskStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusInProgress, task.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		uc, taskRepo := newTaskUsecase(t)

		existing, err := domain.NewTask(clientID, creatorID, "Draft newsletter", "", domain.TaskPriorityLow)
		require.NoError(t, err)

		taskRepo.EXPECT().
			GetByID(gomock.Any(), clientID, existing.ID).
			Return(existing, nil)

		_, err = uc.UpdateTaskStatus(context.Background(), clientID, existing.ID, domain.TaskStatus("archived"))
		require.Error(t, err)
	})

	t.Run("propagates a missing task", func(t *testing.T) {
		uc, taskRepo := newTaskUsecase(t)
		taskID := uuid.New()

		taskRepo.EXPECT().
			GetByID(gomock.Any(), clientID, taskID).
			Return(nil, domain.ErrTaskNotFound)

		_, err := uc.UpdateTaskStatus(context.Background(), clientID, taskID, domain.TaskStatusDone)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}

func TestTaskUseCase_AssignTask(t *testing.T) {
	clientID := uuid.New()
	creatorID := uuid.New()
	assigneeID := uuid.New()

	t.Run("records the assignee", func(t *testing.T) {
		uc, taskRepo := newTaskUsecase(t)

		existing, err := domain.NewTask(clientID, creatorID, "Review inquiry backlog", "", domain.TaskPriorityMedium)
		require.NoError(t, err)

		taskRepo.EXPECT().
			GetByID(gomock.Any(), clientID, existing.ID).
			Return(existing, nil)
		taskRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		task, err := uc.AssignTask(context.Background(), clientID, existing.ID, assigneeID)
		require.NoError(t, err)
		require.NotNil(t, task.AssigneeID)
		assert.Equal(t, assigneeID, *task.AssigneeID)
	})

	t.Run("rejects a nil assignee", func(t *testing.T) {
		uc, taskRepo := newTaskUsecase(t)

		existing, err := domain.NewTask(clientID, creatorID, "Review inquiry backlog", "", domain.TaskPriorityMedium)
		require.NoError(t, err)

		taskRepo.EXPECT().
			GetByID(gomock.Any(), clientID, existing.ID).
			Return(existing, nil)

		_, err = uc.AssignTask(context.Background(), clientID, existing.ID, uuid.Nil)
		require.Error(t, err)
	})
}
