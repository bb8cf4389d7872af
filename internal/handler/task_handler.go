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

// TaskHandler handles task endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// TaskRequest represents a task create/update request.
type TaskRequest struct {
	Description string `json:"description" validate:"required"`
	Duration    int    `json:"duration" validate:"required,min=1"`
	Tag         string `json:"tag"`
	Priority    string `json:"priority" validate:"omitempty,oneof=BAIXA MEDIA ALTA"`
	Status      string `json:"status" validate:"omitempty,oneof=PENDENTE EM_ANDAMENTO CONCLUIDA CANCELADA"`
	AssigneeID  string `json:"assignee_id" validate:"omitempty,uuid"`
	TicketID    string `json:"ticket_id" validate:"omitempty,uuid"`
	System      string `json:"system"`
	VideoURL    string `json:"video_url" validate:"omitempty,url"`
}

// TaskStatusRequest represents a standalone task status change request.
type TaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDENTE EM_ANDAMENTO CONCLUIDA CANCELADA"`
}

func (r *TaskRequest) toModel() (*model.Task, error) {
	assignee, err := optionalUUID(r.AssigneeID)
	if err != nil {
		return nil, err
	}
	ticketID, err := optionalUUID(r.TicketID)
	if err != nil {
		return nil, err
	}
	priority := r.Priority
	if priority == "" {
		priority = model.UrgencyMedia
	}
	return &model.Task{
		Description: r.Description,
		Duration:    r.Duration,
		Tag:         r.Tag,
		Priority:    priority,
		Status:      model.TaskStatus(r.Status),
		AssigneeID:  assignee,
		TicketID:    ticketID,
		System:      r.System,
		VideoURL:    r.VideoURL,
	}, nil
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TaskRequest true "Task data"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	creatorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid linked id", Code: "INVALID_ID"})
	}
	task.CreatedByID = creatorID

	created, err := h.taskService.Create(c.Request().Context(), task)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Get godoc
// @Summary Get a task by id
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} model.Task
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	task, err := h.taskService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// List godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param tag query string false "Tag filter"
// @Param priority query string false "Priority filter"
// @Success 200 {array} model.Task
// @Router /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	filter := repository.TaskFilter{
		Status:   model.TaskStatus(c.QueryParam("status")),
		Tag:      c.QueryParam("tag"),
		Priority: c.QueryParam("priority"),
	}
	if assignee, err := optionalUUID(c.QueryParam("assignee_id")); err == nil {
		filter.AssigneeID = assignee
	}
	if ticketID, err := optionalUUID(c.QueryParam("ticket_id")); err == nil {
		filter.TicketID = ticketID
	}

	tasks, err := h.taskService.List(c.Request().Context(), filter)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// Update godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body TaskRequest true "Task data"
// @Success 200 {object} model.Task
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid linked id", Code: "INVALID_ID"})
	}
	task.ID = id

	updated, err := h.taskService.Update(c.Request().Context(), task)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// UpdateStatus godoc
// @Summary Change a task's status
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body TaskStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id}/status [put]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req TaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.taskService.UpdateStatus(c.Request().Context(), id, model.TaskStatus(req.Status)); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Status atualizado"})
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.taskService.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Tarefa removida"})
}
