package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"helpdesk/internal/auth"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

// fakeAuditService collects recorded entries synchronously.
type fakeAuditService struct {
	entries []model.AuditLog
}

func (f *fakeAuditService) Record(entry model.AuditLog) {
	f.entries = append(f.entries, entry)
}

func (f *fakeAuditService) List(ctx context.Context, filter repository.AuditLogFilter) ([]model.AuditLog, error) {
	return f.entries, nil
}

func (f *fakeAuditService) ActiveUsersSince(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeAuditService) Close() {}

func newAuditContext(t *testing.T, method, target, routePath string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(routePath)

	if userID != uuid.Nil {
		c.Set("user", &jwt.Token{Claims: &auth.Claims{UserID: userID.String(), Email: "a@b.c", Role: "ATENDENTE"}})
	}
	return c, rec
}

func TestAudit_RecordsSuccessfulAuthenticatedRequest(t *testing.T) {
	userID := uuid.New()
	svc := &fakeAuditService{}

	c, _ := newAuditContext(t, http.MethodDelete, "/api/tickets/42", "/api/tickets/:id", userID)
	c.SetParamNames("id")
	c.SetParamValues("42")

	handler := Audit(svc)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "ok"})
	})

	assert.NoError(t, handler(c))
	assert.Len(t, svc.entries, 1)

	entry := svc.entries[0]
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, model.AuditActionDelete, entry.Action)
	assert.Equal(t, "tickets", entry.Entity)
	assert.Equal(t, "42", entry.EntityID)
	assert.Equal(t, "test-agent", entry.UserAgent)
}

func TestAudit_SkipsUnauthenticatedRequest(t *testing.T) {
	svc := &fakeAuditService{}
	c, _ := newAuditContext(t, http.MethodPost, "/api/avaliacoes", "/api/avaliacoes", uuid.Nil)

	handler := Audit(svc)(func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"message": "ok"})
	})

	assert.NoError(t, handler(c))
	assert.Empty(t, svc.entries)
}

func TestAudit_SkipsFailedRequest(t *testing.T) {
	svc := &fakeAuditService{}
	c, _ := newAuditContext(t, http.MethodGet, "/api/tickets/9", "/api/tickets/:id", uuid.New())

	handler := Audit(svc)(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	})

	assert.Error(t, handler(c))
	assert.Empty(t, svc.entries)
}

func TestActionForMethod(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{http.MethodPost, model.AuditActionCreate},
		{http.MethodPut, model.AuditActionUpdate},
		{http.MethodPatch, model.AuditActionUpdate},
		{http.MethodDelete, model.AuditActionDelete},
		{http.MethodGet, model.AuditActionView},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, actionForMethod(tt.method), tt.method)
	}
}

func TestEntityFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/tickets/:id", "tickets"},
		{"/api/tickets", "tickets"},
		{"/api/notifications/:id/read", "notifications"},
		{"/api/dashboard", "dashboard"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, entityFromPath(tt.path), tt.path)
	}
}
