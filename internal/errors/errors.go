package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("Email já cadastrado")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("Usuário não encontrado")
	// ErrTicketNotFound is returned when a ticket is not found.
	ErrTicketNotFound = errors.New("Ticket não encontrado")
	// ErrTaskNotFound is returned when a task is not found.
	ErrTaskNotFound = errors.New("Tarefa não encontrada")
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("Notificação não encontrada")
	// ErrTokenNotFound is returned when an evaluation token does not exist.
	ErrTokenNotFound = errors.New("Token não encontrado")
	// ErrTokenUsed is returned when an evaluation token was already consumed.
	ErrTokenUsed = errors.New("Token já utilizado")
	// ErrTokenExpired is returned when an evaluation token is past its expiry.
	ErrTokenExpired = errors.New("Token expirado")
	// ErrInvalidScore is returned when a survey score is outside 0..10.
	ErrInvalidScore = errors.New("Nota inválida: deve estar entre 0 e 10")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Token failures carry a
// stable code so survey clients do not have to pattern-match message text.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrTicketNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TICKET_NOT_FOUND")
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case errors.Is(err, ErrNotificationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOTIFICATION_NOT_FOUND")
	case errors.Is(err, ErrTokenNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOKEN_NOT_FOUND")
	case errors.Is(err, ErrTokenUsed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOKEN_USED")
	case errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOKEN_EXPIRED")
	case errors.Is(err, ErrInvalidScore):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SCORE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
