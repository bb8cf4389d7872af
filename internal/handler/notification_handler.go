package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"helpdesk/internal/middleware"
	"helpdesk/internal/service"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) currentUser(c echo.Context) (uuid.UUID, *echo.HTTPError) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return id, nil
}

// List godoc
// @Summary List the authenticated user's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Notification
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	userID, httpErr := h.currentUser(c)
	if httpErr != nil {
		return httpErr
	}
	notifications, err := h.notificationService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// UnreadCount godoc
// @Summary Count the authenticated user's unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /notifications/unread [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, httpErr := h.currentUser(c)
	if httpErr != nil {
		return httpErr
	}
	count, err := h.notificationService.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread": count})
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, httpErr := h.currentUser(c)
	if httpErr != nil {
		return httpErr
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.notificationService.MarkRead(c.Request().Context(), uint(id), userID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notificação lida"})
}

// MarkAllRead godoc
// @Summary Mark all of the authenticated user's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, httpErr := h.currentUser(c)
	if httpErr != nil {
		return httpErr
	}
	if err := h.notificationService.MarkAllRead(c.Request().Context(), userID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notificações lidas"})
}
