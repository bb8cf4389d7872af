package service

import (
	"context"
	"encoding/json"
	"time"

	"helpdesk/internal/cache"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

const (
	dashboardCacheKey = "dashboard:metrics"
	dashboardCacheTTL = 60 * time.Second

	// activityWindow is the lookback behind the "active users" metric.
	activityWindow = 30 * 24 * time.Hour
)

// DashboardMetrics is the aggregate view served to the dashboard page.
type DashboardMetrics struct {
	TicketsByStatus   map[string]int64 `json:"tickets_by_status"`
	TicketsByCategory map[string]int64 `json:"tickets_by_category"`
	TasksByStatus     map[string]int64 `json:"tasks_by_status"`
	OpenTickets       int64            `json:"open_tickets"`
	FinishedTickets   int64            `json:"finished_tickets"`
	ActiveUsers       int64            `json:"active_users"`
	NPS               *NPSStats        `json:"nps"`
	GeneratedAt       time.Time        `json:"generated_at"`
}

// DashboardService aggregates metrics across tickets, tasks, evaluations and
// audit activity, with a short Redis cache in front.
type DashboardService interface {
	Metrics(ctx context.Context) (*DashboardMetrics, error)
}

type dashboardService struct {
	ticketRepo repository.TicketRepository
	taskRepo   repository.TaskRepository
	evals      EvaluationService
	audit      AuditService
	cache      *cache.Client
	now        func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	ticketRepo repository.TicketRepository,
	taskRepo repository.TaskRepository,
	evals EvaluationService,
	audit AuditService,
	cache *cache.Client,
) DashboardService {
	return &dashboardService{
		ticketRepo: ticketRepo,
		taskRepo:   taskRepo,
		evals:      evals,
		audit:      audit,
		cache:      cache,
		now:        time.Now,
	}
}

func (s *dashboardService) Metrics(ctx context.Context) (*DashboardMetrics, error) {
	if data, _ := s.cache.Get(ctx, dashboardCacheKey); data != nil {
		var cached DashboardMetrics
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	ticketsByStatus, err := s.ticketRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	ticketsByCategory, err := s.ticketRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	tasksByStatus, err := s.taskRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	nps, err := s.evals.Stats(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.audit.ActiveUsersSince(ctx, s.now().Add(-activityWindow))
	if err != nil {
		return nil, err
	}

	var open int64
	for status, count := range ticketsByStatus {
		if status != string(model.TicketFinalizado) && status != string(model.TicketCancelado) {
			open += count
		}
	}

	metrics := &DashboardMetrics{
		TicketsByStatus:   ticketsByStatus,
		TicketsByCategory: ticketsByCategory,
		TasksByStatus:     tasksByStatus,
		OpenTickets:       open,
		FinishedTickets:   ticketsByStatus[string(model.TicketFinalizado)],
		ActiveUsers:       activeUsers,
		NPS:               nps,
		GeneratedAt:       s.now(),
	}

	if payload, err := json.Marshal(metrics); err == nil {
		_ = s.cache.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL)
	}
	return metrics, nil
}
