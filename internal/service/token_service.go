package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	apperrors "helpdesk/internal/errors"
	"helpdesk/internal/mailer"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

const tokenByteLen = 16

// IssueTokenInput carries the fields needed to issue an evaluation token.
type IssueTokenInput struct {
	Phone       string
	Attendant   string
	ScheduledAt time.Time
	TicketID    *uuid.UUID
	Email       string // optional: when set, the evaluation link is mailed
}

// IssuedToken is the result of issuing a token: the persisted record plus the
// client-facing survey URL embedding it.
type IssuedToken struct {
	Token   *model.EvalToken `json:"token"`
	EvalURL string           `json:"eval_url"`
}

// TokenService issues and validates single-use evaluation tokens.
// Consumption happens through EvaluationService, inside a transaction.
type TokenService interface {
	Issue(ctx context.Context, in IssueTokenInput) (*IssuedToken, error)
	Validate(ctx context.Context, value string) (*model.EvalToken, error)
	List(ctx context.Context) ([]model.EvalToken, error)
}

type tokenService struct {
	tokenRepo repository.EvalTokenRepository
	mail      *mailer.Mailer
	baseURL   string
	now       func() time.Time
}

// NewTokenService creates a new token service.
func NewTokenService(tokenRepo repository.EvalTokenRepository, mail *mailer.Mailer, baseURL string) TokenService {
	return &tokenService{
		tokenRepo: tokenRepo,
		mail:      mail,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

// Issue generates a random hex token valid for 24 hours and persists it.
func (s *tokenService) Issue(ctx context.Context, in IssueTokenInput) (*IssuedToken, error) {
	value, err := generateTokenValue()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	now := s.now()
	token := &model.EvalToken{
		Token:       value,
		Phone:       in.Phone,
		Attendant:   in.Attendant,
		ScheduledAt: in.ScheduledAt,
		ExpiresAt:   now.Add(model.EvalTokenTTL),
		TicketID:    in.TicketID,
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	evalURL := fmt.Sprintf("%s/avaliacao?token=%s", s.baseURL, value)

	if in.Email != "" && s.mail.Enabled() {
		// fire-and-forget: mail failure never fails issuance
		go func(to, attendant, url string) {
			if err := s.mail.SendEvaluationLink(to, attendant, url); err != nil {
				log.Printf("evaluation mail to %s failed: %v", to, err)
			}
		}(in.Email, in.Attendant, evalURL)
	}

	return &IssuedToken{Token: token, EvalURL: evalURL}, nil
}

// Validate classifies a token as usable, missing, used, or expired without
// consuming it.
func (s *tokenService) Validate(ctx context.Context, value string) (*model.EvalToken, error) {
	token, err := s.tokenRepo.FindByValue(ctx, value)
	if err != nil {
		return nil, err
	}
	if token.Used {
		return nil, apperrors.ErrTokenUsed
	}
	if token.Expired(s.now()) {
		return nil, apperrors.ErrTokenExpired
	}
	return token, nil
}

func (s *tokenService) List(ctx context.Context) ([]model.EvalToken, error) {
	return s.tokenRepo.List(ctx)
}

func generateTokenValue() (string, error) {
	buf := make([]byte, tokenByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
