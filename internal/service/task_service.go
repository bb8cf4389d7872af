package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "helpdesk/internal/errors"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

// TaskService exposes task lifecycle operations.
type TaskService interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) (*model.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskService struct {
	taskRepo      repository.TaskRepository
	notifications NotificationService
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo repository.TaskRepository, notifications NotificationService) TaskService {
	return &taskService{
		taskRepo:      taskRepo,
		notifications: notifications,
	}
}

func (s *taskService) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.Status == "" {
		task.Status = model.TaskPendente
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if task.AssigneeID != nil {
		s.notifications.Notify(ctx, *task.AssigneeID, model.NotificationTaskAssigned,
			fmt.Sprintf("Nova tarefa atribuída a você: %s", task.Description))
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	return s.taskRepo.List(ctx, filter)
}

func (s *taskService) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	existing, err := s.Get(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	previousAssignee := existing.AssigneeID
	existing.Description = task.Description
	existing.Duration = task.Duration
	existing.Tag = task.Tag
	existing.Priority = task.Priority
	existing.TicketID = task.TicketID
	existing.System = task.System
	existing.VideoURL = task.VideoURL
	if task.Status != "" {
		existing.Status = task.Status
	}
	existing.AssigneeID = task.AssigneeID

	if err := s.taskRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if existing.AssigneeID != nil && (previousAssignee == nil || *previousAssignee != *existing.AssigneeID) {
		s.notifications.Notify(ctx, *existing.AssigneeID, model.NotificationTaskAssigned,
			fmt.Sprintf("Nova tarefa atribuída a você: %s", existing.Description))
	}
	return existing, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) error {
	task, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	task.Status = status
	return s.taskRepo.Update(ctx, task)
}

func (s *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}
