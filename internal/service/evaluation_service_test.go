package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "helpdesk/internal/errors"
	"helpdesk/internal/model"
)

// MockEvaluationRepository is a mock implementation of EvaluationRepository.
type MockEvaluationRepository struct {
	mock.Mock
}

func (m *MockEvaluationRepository) CreateFromToken(ctx context.Context, eval *model.Evaluation, tokenValue string, now time.Time) (*model.EvalToken, error) {
	args := m.Called(ctx, eval, tokenValue, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EvalToken), args.Error(1)
}

func (m *MockEvaluationRepository) List(ctx context.Context) ([]model.Evaluation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepository) ListBetween(ctx context.Context, from, to time.Time) ([]model.Evaluation, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Evaluation), args.Error(1)
}

func TestEvaluationService_Submit(t *testing.T) {
	tests := []struct {
		name          string
		sistema       int
		atendimento   int
		setupMock     func(*MockEvaluationRepository)
		expectedError error
	}{
		{
			name:        "valid submission",
			sistema:     9,
			atendimento: 10,
			setupMock: func(m *MockEvaluationRepository) {
				m.On("CreateFromToken", mock.Anything, mock.AnythingOfType("*model.Evaluation"), "abc123", mock.Anything).
					Return(&model.EvalToken{Token: "abc123", Used: true}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "score above range",
			sistema:       11,
			atendimento:   5,
			setupMock:     func(m *MockEvaluationRepository) {},
			expectedError: apperrors.ErrInvalidScore,
		},
		{
			name:          "score below range",
			sistema:       5,
			atendimento:   -1,
			setupMock:     func(m *MockEvaluationRepository) {},
			expectedError: apperrors.ErrInvalidScore,
		},
		{
			name:        "token already used",
			sistema:     8,
			atendimento: 8,
			setupMock: func(m *MockEvaluationRepository) {
				m.On("CreateFromToken", mock.Anything, mock.AnythingOfType("*model.Evaluation"), "abc123", mock.Anything).
					Return(nil, apperrors.ErrTokenUsed)
			},
			expectedError: apperrors.ErrTokenUsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockEvaluationRepository)
			tt.setupMock(mockRepo)

			service := NewEvaluationService(mockRepo)
			eval, err := service.Submit(context.Background(), "abc123", tt.sistema, tt.atendimento, "")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, eval)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, eval)
				assert.Equal(t, tt.sistema, eval.ScoreSistema)
				assert.Equal(t, tt.atendimento, eval.ScoreAtendimento)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestComputeNPS(t *testing.T) {
	eval := func(sistema, atendimento int) model.Evaluation {
		return model.Evaluation{ScoreSistema: sistema, ScoreAtendimento: atendimento}
	}

	tests := []struct {
		name               string
		evals              []model.Evaluation
		wantNPS            int
		wantTotal          int
		wantPromotores     int
		wantNeutros        int
		wantDetratores     int
	}{
		{
			name:      "no evaluations yields zero",
			evals:     nil,
			wantNPS:   0,
			wantTotal: 0,
		},
		{
			name:           "one promoter and one detractor cancel out",
			evals:          []model.Evaluation{eval(10, 10), eval(5, 5)},
			wantNPS:        0,
			wantTotal:      2,
			wantPromotores: 1,
			wantDetratores: 1,
		},
		{
			name:           "all promoters",
			evals:          []model.Evaluation{eval(9, 9), eval(10, 9)},
			wantNPS:        100,
			wantTotal:      2,
			wantPromotores: 2,
		},
		{
			name:        "both scores at 8 is passive",
			evals:       []model.Evaluation{eval(8, 8)},
			wantNPS:     0,
			wantTotal:   1,
			wantNeutros: 1,
		},
		{
			name:           "one low score makes a detractor even with a high one",
			evals:          []model.Evaluation{eval(10, 6)},
			wantNPS:        -100,
			wantTotal:      1,
			wantDetratores: 1,
		},
		{
			name: "rounding to nearest integer",
			evals: []model.Evaluation{
				eval(10, 10), eval(10, 10), eval(3, 3),
			},
			// (2-1)/3*100 = 33.33 -> 33
			wantNPS:        33,
			wantTotal:      3,
			wantPromotores: 2,
			wantDetratores: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeNPS(tt.evals)

			assert.Equal(t, tt.wantNPS, stats.NPS)
			assert.Equal(t, tt.wantTotal, stats.TotalAvaliacoes)
			assert.Equal(t, tt.wantPromotores, stats.Promotores)
			assert.Equal(t, tt.wantNeutros, stats.Neutros)
			assert.Equal(t, tt.wantDetratores, stats.Detratores)
		})
	}
}

func TestComputeNPS_Averages(t *testing.T) {
	stats := ComputeNPS([]model.Evaluation{
		{ScoreSistema: 10, ScoreAtendimento: 8},
		{ScoreSistema: 6, ScoreAtendimento: 10},
	})

	assert.InDelta(t, 8.0, stats.MediaSistema, 0.001)
	assert.InDelta(t, 9.0, stats.MediaAtendimento, 0.001)
}
