package service

import (
	"context"
	"log"
	"time"

	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

const (
	auditBatchSize     = 10
	auditFlushInterval = 1 * time.Second
	auditChannelSize   = 100
)

// AuditService records audit entries asynchronously: entries are buffered on
// a channel and flushed in batches so the request path never waits on, or
// fails because of, a log write.
type AuditService interface {
	Record(entry model.AuditLog)
	List(ctx context.Context, filter repository.AuditLogFilter) ([]model.AuditLog, error)
	ActiveUsersSince(ctx context.Context, since time.Time) (int64, error)
	Close()
}

type auditService struct {
	repo    repository.AuditLogRepository
	entries chan model.AuditLog
	done    chan struct{}
}

// NewAuditService creates an audit service and starts its flush worker.
func NewAuditService(repo repository.AuditLogRepository) AuditService {
	s := &auditService{
		repo:    repo,
		entries: make(chan model.AuditLog, auditChannelSize),
		done:    make(chan struct{}),
	}
	go s.worker()
	return s
}

// Record enqueues an entry without blocking. When the buffer is full the
// entry is written synchronously as a fallback; a failed write is only logged.
func (s *auditService) Record(entry model.AuditLog) {
	select {
	case s.entries <- entry:
	default:
		if err := s.repo.Create(context.Background(), &entry); err != nil {
			log.Printf("audit log write failed: %v", err)
		}
	}
}

func (s *auditService) worker() {
	defer close(s.done)

	batch := make([]model.AuditLog, 0, auditBatchSize)
	ticker := time.NewTicker(auditFlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := s.repo.CreateBatch(context.Background(), batch); err != nil {
			log.Printf("audit log batch write failed: %v", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry, ok := <-s.entries:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= auditBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (s *auditService) List(ctx context.Context, filter repository.AuditLogFilter) ([]model.AuditLog, error) {
	return s.repo.List(ctx, filter)
}

func (s *auditService) ActiveUsersSince(ctx context.Context, since time.Time) (int64, error) {
	return s.repo.CountDistinctActorsSince(ctx, since)
}

// Close drains and flushes pending entries. Call on shutdown.
func (s *auditService) Close() {
	close(s.entries)
	<-s.done
}
