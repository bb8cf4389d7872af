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

// TicketService exposes ticket lifecycle operations.
type TicketService interface {
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Ticket, error)
	List(ctx context.Context, filter repository.TicketFilter) ([]model.Ticket, error)
	Update(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TicketStatus) error
	Transfer(ctx context.Context, id, newAssigneeID uuid.UUID) (*model.Ticket, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketService struct {
	ticketRepo    repository.TicketRepository
	notifications NotificationService
}

// NewTicketService creates a new ticket service.
func NewTicketService(ticketRepo repository.TicketRepository, notifications NotificationService) TicketService {
	return &ticketService{
		ticketRepo:    ticketRepo,
		notifications: notifications,
	}
}

func (s *ticketService) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	if ticket.Status == "" {
		ticket.Status = model.TicketAberto
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	if ticket.AssigneeID != nil {
		s.notifications.Notify(ctx, *ticket.AssigneeID, model.NotificationTicketAssigned,
			fmt.Sprintf("Você foi designado para o ticket %q", ticket.Title))
	}
	return ticket, nil
}

func (s *ticketService) Get(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	ticket, err := s.ticketRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *ticketService) List(ctx context.Context, filter repository.TicketFilter) ([]model.Ticket, error) {
	return s.ticketRepo.List(ctx, filter)
}

// Update pre-checks existence so a missing ticket is always a not-found
// error, matching the delete path.
func (s *ticketService) Update(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	existing, err := s.Get(ctx, ticket.ID)
	if err != nil {
		return nil, err
	}

	previousAssignee := existing.AssigneeID
	existing.Title = ticket.Title
	existing.Description = ticket.Description
	existing.Category = ticket.Category
	existing.Urgency = ticket.Urgency
	if ticket.Status != "" {
		existing.Status = ticket.Status
	}
	existing.AssigneeID = ticket.AssigneeID

	if err := s.ticketRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if existing.AssigneeID != nil && (previousAssignee == nil || *previousAssignee != *existing.AssigneeID) {
		s.notifications.Notify(ctx, *existing.AssigneeID, model.NotificationTicketAssigned,
			fmt.Sprintf("Você foi designado para o ticket %q", existing.Title))
	}
	return existing, nil
}

func (s *ticketService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TicketStatus) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.ticketRepo.UpdateStatus(ctx, id, status)
}

// Transfer reassigns a ticket and notifies the new assignee. A ticket still
// open moves to EM_ANDAMENTO on transfer.
func (s *ticketService) Transfer(ctx context.Context, id, newAssigneeID uuid.UUID) (*model.Ticket, error) {
	ticket, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket.AssigneeID = &newAssigneeID
	if ticket.Status == model.TicketAberto {
		ticket.Status = model.TicketEmAndamento
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.notifications.Notify(ctx, newAssigneeID, model.NotificationTicketTransferred,
		fmt.Sprintf("O ticket %q foi transferido para você", ticket.Title))
	return ticket, nil
}

func (s *ticketService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.ticketRepo.Delete(ctx, id)
}
