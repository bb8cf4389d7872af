package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"helpdesk/internal/errors"
	"helpdesk/internal/service"
)

// TokenHandler handles evaluation token endpoints.
type TokenHandler struct {
	tokenService service.TokenService
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(tokenService service.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

// IssueTokenRequest represents a token issuance request.
type IssueTokenRequest struct {
	Phone       string `json:"phone" validate:"required"`
	Attendant   string `json:"attendant" validate:"required"`
	ScheduledAt string `json:"scheduled_at" validate:"required"`
	TicketID    string `json:"ticket_id" validate:"omitempty,uuid"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// Issue godoc
// @Summary Issue a single-use evaluation token
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IssueTokenRequest true "Token data"
// @Success 201 {object} service.IssuedToken
// @Failure 400 {object} errors.ErrorResponse
// @Router /tokens [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "scheduled_at must be RFC3339",
			Code:  "INVALID_DATE",
		})
	}
	ticketID, err := optionalUUID(req.TicketID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid ticket_id", Code: "INVALID_ID"})
	}

	issued, err := h.tokenService.Issue(c.Request().Context(), service.IssueTokenInput{
		Phone:       req.Phone,
		Attendant:   req.Attendant,
		ScheduledAt: scheduledAt,
		TicketID:    ticketID,
		Email:       req.Email,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, issued)
}

// Validate godoc
// @Summary Check whether an evaluation token is still usable
// @Tags tokens
// @Produce json
// @Param token query string true "Token value"
// @Success 200 {object} model.EvalToken
// @Failure 400 {object} errors.ErrorResponse
// @Router /tokens/validate [get]
func (h *TokenHandler) Validate(c echo.Context) error {
	value := c.QueryParam("token")
	if value == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "token is required",
			Code:  "TOKEN_REQUIRED",
		})
	}

	token, err := h.tokenService.Validate(c.Request().Context(), value)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, token)
}

// List godoc
// @Summary List issued tokens
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.EvalToken
// @Router /tokens [get]
func (h *TokenHandler) List(c echo.Context) error {
	tokens, err := h.tokenService.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, tokens)
}
