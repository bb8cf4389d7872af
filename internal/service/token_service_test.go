package service

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "helpdesk/internal/errors"
	"helpdesk/internal/mailer"
	"helpdesk/internal/model"
)

// MockEvalTokenRepository is a mock implementation of EvalTokenRepository.
type MockEvalTokenRepository struct {
	mock.Mock
}

func (m *MockEvalTokenRepository) Create(ctx context.Context, token *model.EvalToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockEvalTokenRepository) FindByValue(ctx context.Context, value string) (*model.EvalToken, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EvalToken), args.Error(1)
}

func (m *MockEvalTokenRepository) List(ctx context.Context) ([]model.EvalToken, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EvalToken), args.Error(1)
}

func newTestTokenService(repo *MockEvalTokenRepository, now time.Time) *tokenService {
	svc := NewTokenService(repo, mailer.New("", 0, "", "", ""), "http://localhost:3000").(*tokenService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestTokenService_Issue(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mockRepo := new(MockEvalTokenRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.EvalToken")).Return(nil)

	svc := newTestTokenService(mockRepo, now)
	issued, err := svc.Issue(context.Background(), IssueTokenInput{
		Phone:       "+55 11 99999-0000",
		Attendant:   "Maria",
		ScheduledAt: now.Add(-time.Hour),
	})

	assert.NoError(t, err)
	assert.Len(t, issued.Token.Token, 32)
	_, decodeErr := hex.DecodeString(issued.Token.Token)
	assert.NoError(t, decodeErr)
	assert.Equal(t, now.Add(24*time.Hour), issued.Token.ExpiresAt)
	assert.False(t, issued.Token.Used)
	assert.Equal(t, "http://localhost:3000/avaliacao?token="+issued.Token.Token, issued.EvalURL)

	mockRepo.AssertExpectations(t)
}

func TestTokenService_Issue_UniqueValues(t *testing.T) {
	mockRepo := new(MockEvalTokenRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.EvalToken")).Return(nil)

	svc := newTestTokenService(mockRepo, time.Now())
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		issued, err := svc.Issue(context.Background(), IssueTokenInput{Phone: "x", Attendant: "y", ScheduledAt: time.Now()})
		assert.NoError(t, err)
		assert.False(t, seen[issued.Token.Token])
		seen[issued.Token.Token] = true
	}
}

func TestTokenService_Validate(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(*MockEvalTokenRepository)
		expectedError error
	}{
		{
			name: "usable token",
			setupMock: func(m *MockEvalTokenRepository) {
				m.On("FindByValue", mock.Anything, "tok").Return(&model.EvalToken{
					Token:     "tok",
					ExpiresAt: now.Add(time.Hour),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name: "missing token",
			setupMock: func(m *MockEvalTokenRepository) {
				m.On("FindByValue", mock.Anything, "tok").Return(nil, apperrors.ErrTokenNotFound)
			},
			expectedError: apperrors.ErrTokenNotFound,
		},
		{
			name: "already used",
			setupMock: func(m *MockEvalTokenRepository) {
				m.On("FindByValue", mock.Anything, "tok").Return(&model.EvalToken{
					Token:     "tok",
					Used:      true,
					ExpiresAt: now.Add(time.Hour),
				}, nil)
			},
			expectedError: apperrors.ErrTokenUsed,
		},
		{
			name: "expired but unused",
			setupMock: func(m *MockEvalTokenRepository) {
				m.On("FindByValue", mock.Anything, "tok").Return(&model.EvalToken{
					Token:     "tok",
					ExpiresAt: now.Add(-time.Minute),
				}, nil)
			},
			expectedError: apperrors.ErrTokenExpired,
		},
		{
			// expiry is exclusive: at the exact instant the consumption
			// predicate expires_at > now already rejects, so Validate must too
			name: "expires exactly now",
			setupMock: func(m *MockEvalTokenRepository) {
				m.On("FindByValue", mock.Anything, "tok").Return(&model.EvalToken{
					Token:     "tok",
					ExpiresAt: now,
				}, nil)
			},
			expectedError: apperrors.ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockEvalTokenRepository)
			tt.setupMock(mockRepo)

			svc := newTestTokenService(mockRepo, now)
			token, err := svc.Validate(context.Background(), "tok")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, token)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
