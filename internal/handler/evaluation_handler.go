package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"helpdesk/internal/errors"
	"helpdesk/internal/service"
)

// EvaluationHandler handles survey submission and NPS statistics.
type EvaluationHandler struct {
	evalService service.EvaluationService
}

// NewEvaluationHandler creates a new evaluation handler.
func NewEvaluationHandler(evalService service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evalService: evalService}
}

// SubmitEvaluationRequest represents a survey submission.
// Submission is unauthenticated; the token is the credential.
type SubmitEvaluationRequest struct {
	Token       string `json:"token" validate:"required"`
	Sistema     int    `json:"sistema" validate:"min=0,max=10"`
	Atendimento int    `json:"atendimento" validate:"min=0,max=10"`
	Comentario  string `json:"comentario"`
}

// Submit godoc
// @Summary Submit a survey response for a valid token
// @Tags avaliacoes
// @Accept json
// @Produce json
// @Param request body SubmitEvaluationRequest true "Evaluation data"
// @Success 201 {object} model.Evaluation
// @Failure 400 {object} errors.ErrorResponse
// @Router /avaliacoes [post]
func (h *EvaluationHandler) Submit(c echo.Context) error {
	var req SubmitEvaluationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	eval, err := h.evalService.Submit(c.Request().Context(), req.Token, req.Sistema, req.Atendimento, req.Comentario)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, eval)
}

// List godoc
// @Summary List evaluations
// @Tags avaliacoes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Evaluation
// @Router /avaliacoes [get]
func (h *EvaluationHandler) List(c echo.Context) error {
	evals, err := h.evalService.List(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, evals)
}

// Stats godoc
// @Summary NPS statistics over all or a period of evaluations
// @Tags avaliacoes
// @Produce json
// @Security BearerAuth
// @Param from query string false "Period start (RFC3339)"
// @Param to query string false "Period end (RFC3339)"
// @Success 200 {object} service.NPSStats
// @Failure 400 {object} errors.ErrorResponse
// @Router /avaliacoes/stats [get]
func (h *EvaluationHandler) Stats(c echo.Context) error {
	from, err := optionalTime(c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "from must be RFC3339", Code: "INVALID_DATE"})
	}
	to, err := optionalTime(c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "to must be RFC3339", Code: "INVALID_DATE"})
	}

	stats, err := h.evalService.Stats(c.Request().Context(), from, to)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func optionalTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
