package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"helpdesk/internal/errors"
	"helpdesk/internal/middleware"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
	"helpdesk/internal/service"
)

// TicketHandler handles ticket endpoints.
type TicketHandler struct {
	ticketService service.TicketService
}

// NewTicketHandler creates a new ticket handler.
func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// TicketRequest represents a ticket create/update request.
type TicketRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Urgency     string `json:"urgency" validate:"omitempty,oneof=BAIXA MEDIA ALTA"`
	Status      string `json:"status" validate:"omitempty,oneof=ABERTO EM_ANDAMENTO AGUARDANDO_CLIENTE AGUARDANDO_TERCEIROS FINALIZADO CANCELADO"`
	AssigneeID  string `json:"assignee_id" validate:"omitempty,uuid"`
}

// TransferRequest represents a ticket transfer request.
type TransferRequest struct {
	AssigneeID string `json:"assignee_id" validate:"required,uuid"`
}

// StatusRequest represents a standalone status change request.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ABERTO EM_ANDAMENTO AGUARDANDO_CLIENTE AGUARDANDO_TERCEIROS FINALIZADO CANCELADO"`
}

func (r *TicketRequest) toModel() (*model.Ticket, error) {
	assignee, err := optionalUUID(r.AssigneeID)
	if err != nil {
		return nil, err
	}
	urgency := r.Urgency
	if urgency == "" {
		urgency = model.UrgencyMedia
	}
	return &model.Ticket{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Urgency:     urgency,
		Status:      model.TicketStatus(r.Status),
		AssigneeID:  assignee,
	}, nil
}

// Create godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TicketRequest true "Ticket data"
// @Success 201 {object} model.Ticket
// @Failure 400 {object} errors.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	creatorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req TicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid assignee_id", Code: "INVALID_ID"})
	}
	ticket.CreatedByID = creatorID

	created, err := h.ticketService.Create(c.Request().Context(), ticket)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Get godoc
// @Summary Get a ticket by id
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} model.Ticket
// @Failure 404 {object} errors.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ticket, err := h.ticketService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ticket)
}

// List godoc
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param urgency query string false "Urgency filter"
// @Success 200 {array} model.Ticket
// @Router /tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	filter := repository.TicketFilter{
		Status:   model.TicketStatus(c.QueryParam("status")),
		Category: c.QueryParam("category"),
		Urgency:  c.QueryParam("urgency"),
	}
	if assignee, err := optionalUUID(c.QueryParam("assignee_id")); err == nil {
		filter.AssigneeID = assignee
	}
	if creator, err := optionalUUID(c.QueryParam("created_by_id")); err == nil {
		filter.CreatedByID = creator
	}

	tickets, err := h.ticketService.List(c.Request().Context(), filter)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, tickets)
}

// Update godoc
// @Summary Update a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body TicketRequest true "Ticket data"
// @Success 200 {object} model.Ticket
// @Failure 404 {object} errors.ErrorResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req TicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid assignee_id", Code: "INVALID_ID"})
	}
	ticket.ID = id

	updated, err := h.ticketService.Update(c.Request().Context(), ticket)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// UpdateStatus godoc
// @Summary Change a ticket's status
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /tickets/{id}/status [put]
func (h *TicketHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.ticketService.UpdateStatus(c.Request().Context(), id, model.TicketStatus(req.Status)); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Status atualizado"})
}

// Transfer godoc
// @Summary Transfer a ticket to another attendant
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Param request body TransferRequest true "New assignee"
// @Success 200 {object} model.Ticket
// @Failure 404 {object} errors.ErrorResponse
// @Router /tickets/{id}/transfer [put]
func (h *TicketHandler) Transfer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req TransferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assigneeID, err := uuid.Parse(req.AssigneeID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid assignee_id", Code: "INVALID_ID"})
	}

	ticket, err := h.ticketService.Transfer(c.Request().Context(), id, assigneeID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, ticket)
}

// Delete godoc
// @Summary Delete a ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.ticketService.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Ticket removido"})
}
