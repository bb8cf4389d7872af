package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"helpdesk/internal/auth"
	"helpdesk/internal/model"
	"helpdesk/internal/service"
)

// Audit returns middleware that records who did what. It runs after the
// handler and only logs successful (2xx) responses of authenticated requests;
// enqueueing is non-blocking and a log failure never affects the response.
func Audit(audit service.AuditService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				return err
			}

			status := c.Response().Status
			if status < http.StatusOK || status >= http.StatusMultipleChoices {
				return nil
			}

			claims := ClaimsFrom(c)
			if claims == nil {
				return nil
			}
			userID, err := parseClaimsUserID(claims)
			if err != nil {
				return nil
			}

			req := c.Request()
			audit.Record(model.AuditLog{
				UserID:    userID,
				Action:    actionForMethod(req.Method),
				Entity:    entityFromPath(c.Path()),
				EntityID:  c.Param("id"),
				Details:   fmt.Sprintf("%s %s", req.Method, req.URL.Path),
				IP:        c.RealIP(),
				UserAgent: req.UserAgent(),
			})
			return nil
		}
	}
}

// ClaimsFrom extracts the JWT claims set by the echo-jwt middleware, or nil
// on an unauthenticated request.
func ClaimsFrom(c echo.Context) *auth.Claims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func actionForMethod(method string) string {
	switch method {
	case http.MethodPost:
		return model.AuditActionCreate
	case http.MethodPut, http.MethodPatch:
		return model.AuditActionUpdate
	case http.MethodDelete:
		return model.AuditActionDelete
	default:
		return model.AuditActionView
	}
}

// entityFromPath derives the entity name from the first path segment after
// the /api prefix, e.g. "/api/tickets/:id" -> "tickets".
func entityFromPath(routePath string) string {
	trimmed := strings.TrimPrefix(routePath, "/api")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return trimmed
}
