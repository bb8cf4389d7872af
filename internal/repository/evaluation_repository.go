package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/model"
)

// EvaluationRepository defines evaluation persistence operations.
type EvaluationRepository interface {
	// CreateFromToken consumes the token and records the evaluation in a
	// single transaction. When the token references a ticket, the ticket is
	// finalized in the same transaction. Returns the consumed token.
	CreateFromToken(ctx context.Context, eval *model.Evaluation, tokenValue string, now time.Time) (*model.EvalToken, error)
	List(ctx context.Context) ([]model.Evaluation, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Evaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository creates a new evaluation repository.
func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) CreateFromToken(ctx context.Context, eval *model.Evaluation, tokenValue string, now time.Time) (*model.EvalToken, error) {
	var consumed *model.EvalToken
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := consumeToken(tx, tokenValue, now)
		if err != nil {
			return err
		}
		consumed = token

		eval.TicketID = token.TicketID
		if err := tx.Create(eval).Error; err != nil {
			return err
		}

		if token.TicketID != nil {
			err := tx.Model(&model.Ticket{}).
				Where("id = ?", *token.TicketID).
				Update("status", model.TicketFinalizado).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return consumed, nil
}

func (r *evaluationRepository) List(ctx context.Context) ([]model.Evaluation, error) {
	var evals []model.Evaluation
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&evals).Error; err != nil {
		return nil, err
	}
	return evals, nil
}

func (r *evaluationRepository) ListBetween(ctx context.Context, from, to time.Time) ([]model.Evaluation, error) {
	var evals []model.Evaluation
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", from, to).
		Order("created_at DESC").Find(&evals).Error
	if err != nil {
		return nil, err
	}
	return evals, nil
}
