package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"helpdesk/internal/auth"
	"helpdesk/internal/config"
	"helpdesk/internal/handler"
	"helpdesk/internal/middleware"
	"helpdesk/internal/model"
	"helpdesk/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	auditService service.AuditService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	ticketHandler *handler.TicketHandler,
	taskHandler *handler.TaskHandler,
	tokenHandler *handler.TokenHandler,
	evaluationHandler *handler.EvaluationHandler,
	notificationHandler *handler.NotificationHandler,
	dashboardHandler *handler.DashboardHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Survey submission is public: the evaluation token is the credential.
	api.POST("/avaliacoes", evaluationHandler.Submit)
	api.GET("/tokens/validate", tokenHandler.Validate)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))
	secured.Use(middleware.Audit(auditService))

	secured.PUT("/auth/password", authHandler.ChangePassword)

	secured.GET("/users/me", userHandler.Me)
	secured.PUT("/users/me", userHandler.UpdateProfile)
	secured.PUT("/users/me/settings", userHandler.UpdateSettings)
	secured.DELETE("/users/me", userHandler.DeleteAccount)

	secured.POST("/tickets", ticketHandler.Create)
	secured.GET("/tickets", ticketHandler.List)
	secured.GET("/tickets/:id", ticketHandler.Get)
	secured.PUT("/tickets/:id", ticketHandler.Update)
	secured.PUT("/tickets/:id/status", ticketHandler.UpdateStatus)
	secured.PUT("/tickets/:id/transfer", ticketHandler.Transfer)
	secured.DELETE("/tickets/:id", ticketHandler.Delete)

	secured.POST("/tasks", taskHandler.Create)
	secured.GET("/tasks", taskHandler.List)
	secured.GET("/tasks/:id", taskHandler.Get)
	secured.PUT("/tasks/:id", taskHandler.Update)
	secured.PUT("/tasks/:id/status", taskHandler.UpdateStatus)
	secured.DELETE("/tasks/:id", taskHandler.Delete)

	secured.POST("/tokens", tokenHandler.Issue)
	secured.GET("/tokens", tokenHandler.List)

	secured.GET("/avaliacoes", evaluationHandler.List)
	secured.GET("/avaliacoes/stats", evaluationHandler.Stats)

	secured.GET("/notifications", notificationHandler.List)
	secured.GET("/notifications/unread", notificationHandler.UnreadCount)
	secured.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	secured.PUT("/notifications/read-all", notificationHandler.MarkAllRead)

	secured.GET("/dashboard", dashboardHandler.Metrics)

	secured.POST("/upload", uploadHandler.Upload)

	// Administrative routes
	admin := secured.Group("", middleware.RequireRole(model.RoleAdmin, model.RoleGestor))
	admin.GET("/users", userHandler.ListUsers)
	admin.GET("/logs", dashboardHandler.ListLogs)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
