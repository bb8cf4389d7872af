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

// MockTicketRepository is a mock implementation of TicketRepository.
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, ticket *model.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) List(ctx context.Context, filter repository.TicketFilter) ([]model.Ticket, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ticket), args.Error(1)
}

func (m *MockTicketRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TicketStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockTicketRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// recordingNotifier captures notifications instead of persisting them.
type recordingNotifier struct {
	NotificationService
	notified []uuid.UUID
	types    []string
}

func (r *recordingNotifier) Notify(ctx context.Context, userID uuid.UUID, ntype, message string) {
	r.notified = append(r.notified, userID)
	r.types = append(r.types, ntype)
}

func TestTicketService_Create_NotifiesAssignee(t *testing.T) {
	assignee := uuid.New()
	mockRepo := new(MockTicketRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Ticket")).Return(nil)

	notifier := &recordingNotifier{}
	svc := NewTicketService(mockRepo, notifier)

	ticket, err := svc.Create(context.Background(), &model.Ticket{
		Title:       "Sistema fora do ar",
		Description: "Erro 500 na tela de login",
		Category:    "INFRA",
		AssigneeID:  &assignee,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.TicketAberto, ticket.Status)
	assert.Equal(t, []uuid.UUID{assignee}, notifier.notified)
	assert.Equal(t, []string{model.NotificationTicketAssigned}, notifier.types)
}

func TestTicketService_Delete_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockTicketRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewTicketService(mockRepo, &recordingNotifier{})
	err := svc.Delete(context.Background(), id)

	assert.Equal(t, apperrors.ErrTicketNotFound, err)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTicketService_Transfer(t *testing.T) {
	id := uuid.New()
	newAssignee := uuid.New()

	t.Run("open ticket moves to in-progress and notifies", func(t *testing.T) {
		mockRepo := new(MockTicketRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Ticket{
			ID:     id,
			Title:  "Impressora",
			Status: model.TicketAberto,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Ticket")).Return(nil)

		notifier := &recordingNotifier{}
		svc := NewTicketService(mockRepo, notifier)

		ticket, err := svc.Transfer(context.Background(), id, newAssignee)

		assert.NoError(t, err)
		assert.Equal(t, model.TicketEmAndamento, ticket.Status)
		assert.Equal(t, newAssignee, *ticket.AssigneeID)
		assert.Equal(t, []string{model.NotificationTicketTransferred}, notifier.types)
	})

	t.Run("in-progress ticket keeps its status", func(t *testing.T) {
		mockRepo := new(MockTicketRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Ticket{
			ID:     id,
			Status: model.TicketAguardandoCliente,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Ticket")).Return(nil)

		svc := NewTicketService(mockRepo, &recordingNotifier{})
		ticket, err := svc.Transfer(context.Background(), id, newAssignee)

		assert.NoError(t, err)
		assert.Equal(t, model.TicketAguardandoCliente, ticket.Status)
	})

	t.Run("missing ticket", func(t *testing.T) {
		mockRepo := new(MockTicketRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTicketService(mockRepo, &recordingNotifier{})
		_, err := svc.Transfer(context.Background(), id, newAssignee)

		assert.Equal(t, apperrors.ErrTicketNotFound, err)
	})
}
