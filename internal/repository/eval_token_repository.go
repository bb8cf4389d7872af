package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "helpdesk/internal/errors"
	"helpdesk/internal/model"
)

// EvalTokenRepository defines evaluation token persistence operations.
type EvalTokenRepository interface {
	Create(ctx context.Context, token *model.EvalToken) error
	FindByValue(ctx context.Context, value string) (*model.EvalToken, error)
	List(ctx context.Context) ([]model.EvalToken, error)
}

type evalTokenRepository struct {
	db *gorm.DB
}

// NewEvalTokenRepository creates a new evaluation token repository.
func NewEvalTokenRepository(db *gorm.DB) EvalTokenRepository {
	return &evalTokenRepository{db: db}
}

func (r *evalTokenRepository) Create(ctx context.Context, token *model.EvalToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *evalTokenRepository) FindByValue(ctx context.Context, value string) (*model.EvalToken, error) {
	var token model.EvalToken
	err := r.db.WithContext(ctx).Where("token = ?", value).First(&token).Error
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrTokenNotFound
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *evalTokenRepository) List(ctx context.Context) ([]model.EvalToken, error) {
	var tokens []model.EvalToken
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

// consumeToken atomically marks a token used. The conditional update admits
// exactly one winner under concurrent submissions; when zero rows are
// affected the token is re-read to classify the failure.
func consumeToken(tx *gorm.DB, value string, now time.Time) (*model.EvalToken, error) {
	res := tx.Model(&model.EvalToken{}).
		Where("token = ? AND usado = ? AND expires_at > ?", value, false, now).
		Update("usado", true)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		var token model.EvalToken
		err := tx.Where("token = ?", value).First(&token).Error
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTokenNotFound
		}
		if err != nil {
			return nil, err
		}
		if token.Used {
			return nil, apperrors.ErrTokenUsed
		}
		return nil, apperrors.ErrTokenExpired
	}

	var token model.EvalToken
	if err := tx.Where("token = ?", value).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}
