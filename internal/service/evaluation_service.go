package service

import (
	"context"
	"math"
	"time"

	apperrors "helpdesk/internal/errors"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

// NPS classification thresholds: promoter needs both scores at 9 or above,
// a single score at 6 or below makes a detractor.
const (
	promoterMinScore  = 9
	detractorMaxScore = 6
)

// NPSStats aggregates survey responses into a Net Promoter Score.
type NPSStats struct {
	TotalAvaliacoes  int     `json:"totalAvaliacoes"`
	Promotores       int     `json:"promotores"`
	Neutros          int     `json:"neutros"`
	Detratores       int     `json:"detratores"`
	NPS              int     `json:"nps"`
	MediaSistema     float64 `json:"mediaSistema"`
	MediaAtendimento float64 `json:"mediaAtendimento"`
}

// EvaluationService records survey responses and computes NPS statistics.
type EvaluationService interface {
	// Submit consumes the token and records the evaluation; the linked
	// ticket, if any, is finalized in the same transaction.
	Submit(ctx context.Context, tokenValue string, sistema, atendimento int, comment string) (*model.Evaluation, error)
	List(ctx context.Context) ([]model.Evaluation, error)
	Stats(ctx context.Context, from, to *time.Time) (*NPSStats, error)
}

type evaluationService struct {
	evalRepo repository.EvaluationRepository
	now      func() time.Time
}

// NewEvaluationService creates a new evaluation service.
func NewEvaluationService(evalRepo repository.EvaluationRepository) EvaluationService {
	return &evaluationService{
		evalRepo: evalRepo,
		now:      time.Now,
	}
}

func (s *evaluationService) Submit(ctx context.Context, tokenValue string, sistema, atendimento int, comment string) (*model.Evaluation, error) {
	if sistema < 0 || sistema > 10 || atendimento < 0 || atendimento > 10 {
		return nil, apperrors.ErrInvalidScore
	}

	eval := &model.Evaluation{
		ScoreSistema:     sistema,
		ScoreAtendimento: atendimento,
		Comment:          comment,
	}

	if _, err := s.evalRepo.CreateFromToken(ctx, eval, tokenValue, s.now()); err != nil {
		return nil, err
	}
	return eval, nil
}

func (s *evaluationService) List(ctx context.Context) ([]model.Evaluation, error) {
	return s.evalRepo.List(ctx)
}

func (s *evaluationService) Stats(ctx context.Context, from, to *time.Time) (*NPSStats, error) {
	var (
		evals []model.Evaluation
		err   error
	)
	if from != nil || to != nil {
		start, end := time.Time{}, s.now()
		if from != nil {
			start = *from
		}
		if to != nil {
			end = *to
		}
		evals, err = s.evalRepo.ListBetween(ctx, start, end)
	} else {
		evals, err = s.evalRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	return ComputeNPS(evals), nil
}

// ComputeNPS classifies each evaluation and derives the score:
// NPS = (promoters - detractors) / total * 100, rounded, 0 for no data.
func ComputeNPS(evals []model.Evaluation) *NPSStats {
	stats := &NPSStats{TotalAvaliacoes: len(evals)}
	if len(evals) == 0 {
		return stats
	}

	var sumSistema, sumAtendimento int
	for _, e := range evals {
		sumSistema += e.ScoreSistema
		sumAtendimento += e.ScoreAtendimento

		switch {
		case e.ScoreSistema <= detractorMaxScore || e.ScoreAtendimento <= detractorMaxScore:
			stats.Detratores++
		case e.ScoreSistema >= promoterMinScore && e.ScoreAtendimento >= promoterMinScore:
			stats.Promotores++
		default:
			stats.Neutros++
		}
	}

	total := float64(stats.TotalAvaliacoes)
	stats.NPS = int(math.Round(float64(stats.Promotores-stats.Detratores) / total * 100))
	stats.MediaSistema = float64(sumSistema) / total
	stats.MediaAtendimento = float64(sumAtendimento) / total
	return stats
}
