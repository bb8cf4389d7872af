package main

import (
	"log"
	"net/http"

	_ "helpdesk/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"helpdesk/internal/auth"
	"helpdesk/internal/cache"
	"helpdesk/internal/config"
	"helpdesk/internal/db"
	"helpdesk/internal/handler"
	"helpdesk/internal/mailer"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
	"helpdesk/internal/router"
	"helpdesk/internal/service"
)

// @title Helpdesk API
// @version 1.0
// @description Support-desk API with tickets, tasks, single-use evaluation tokens, NPS statistics and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Printf("database close: %v", err)
		}
	}()

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserSettings{},
		&model.Ticket{},
		&model.Attachment{},
		&model.Task{},
		&model.EvalToken{},
		&model.Evaluation{},
		&model.Notification{},
		&model.AuditLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	tokenRepo := repository.NewEvalTokenRepository(gormDB)
	evalRepo := repository.NewEvaluationRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	auditRepo := repository.NewAuditLogRepository(gormDB)
	attachmentRepo := repository.NewAttachmentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	ticketService := service.NewTicketService(ticketRepo, notificationService)
	taskService := service.NewTaskService(taskRepo, notificationService)
	tokenService := service.NewTokenService(tokenRepo, mail, cfg.EvalBaseURL)
	evaluationService := service.NewEvaluationService(evalRepo)
	auditService := service.NewAuditService(auditRepo)
	defer auditService.Close()
	dashboardService := service.NewDashboardService(ticketRepo, taskRepo, evaluationService, auditService, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	taskHandler := handler.NewTaskHandler(taskService)
	tokenHandler := handler.NewTokenHandler(tokenService)
	evaluationHandler := handler.NewEvaluationHandler(evaluationService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, auditService)
	uploadHandler := handler.NewUploadHandler(attachmentRepo, cfg.UploadDir)

	// Register routes
	router.Register(
		e,
		cfg,
		auditService,
		authHandler,
		userHandler,
		ticketHandler,
		taskHandler,
		tokenHandler,
		evaluationHandler,
		notificationHandler,
		dashboardHandler,
		uploadHandler,
	)

	log.Printf("Swagger documentation available at: http://localhost:%s/api-docs/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
