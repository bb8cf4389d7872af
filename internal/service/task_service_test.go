package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "helpdesk/internal/errors"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func TestTaskService_Create_NotifiesAssignee(t *testing.T) {
	assignee := uuid.New()
	mockRepo := new(MockTaskRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	notifier := &recordingNotifier{}
	svc := NewTaskService(mockRepo, notifier)

	task, err := svc.Create(context.Background(), &model.Task{
		Description: "Atualizar certificado SSL",
		Duration:    30,
		AssigneeID:  &assignee,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.TaskPendente, task.Status)
	assert.Equal(t, []uuid.UUID{assignee}, notifier.notified)
	assert.Equal(t, []string{model.NotificationTaskAssigned}, notifier.types)
}

func TestTaskService_UpdateStatus(t *testing.T) {
	id := uuid.New()

	t.Run("persists the new status", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Task{
			ID:     id,
			Status: model.TaskPendente,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
			return task.ID == id && task.Status == model.TaskConcluida
		})).Return(nil)

		svc := NewTaskService(mockRepo, &recordingNotifier{})
		err := svc.UpdateStatus(context.Background(), id, model.TaskConcluida)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing task", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(mockRepo, &recordingNotifier{})
		err := svc.UpdateStatus(context.Background(), id, model.TaskCancelada)

		assert.Equal(t, apperrors.ErrTaskNotFound, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
