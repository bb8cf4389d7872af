package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"helpdesk/internal/repository"
	"helpdesk/internal/service"
)

// DashboardHandler serves aggregate metrics and audit log listings.
type DashboardHandler struct {
	dashboardService service.DashboardService
	auditService     service.AuditService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService, auditService service.AuditService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		auditService:     auditService,
	}
}

// Metrics godoc
// @Summary Dashboard metrics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardMetrics
// @Router /dashboard [get]
func (h *DashboardHandler) Metrics(c echo.Context) error {
	metrics, err := h.dashboardService.Metrics(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, metrics)
}

// ListLogs godoc
// @Summary List audit log entries
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param action query string false "Action filter"
// @Param entity query string false "Entity filter"
// @Success 200 {array} model.AuditLog
// @Failure 403 {object} errors.ErrorResponse
// @Router /logs [get]
func (h *DashboardHandler) ListLogs(c echo.Context) error {
	filter := repository.AuditLogFilter{
		Action: c.QueryParam("action"),
		Entity: c.QueryParam("entity"),
	}
	logs, err := h.auditService.List(c.Request().Context(), filter)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, logs)
}
