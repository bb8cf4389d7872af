package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"helpdesk/internal/auth"
	"helpdesk/internal/model"
)

// RequireRole allows the request through only when the JWT role claim matches
// one of the given roles.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[string(role)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if _, ok := allowed[claims.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Acesso negado")
			}
			return next(c)
		}
	}
}

func parseClaimsUserID(claims *auth.Claims) (uuid.UUID, error) {
	return uuid.Parse(claims.UserID)
}
