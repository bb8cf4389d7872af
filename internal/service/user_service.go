package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "helpdesk/internal/errors"
	"helpdesk/internal/model"
	"helpdesk/internal/repository"
)

// UserService exposes profile and settings operations.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (*model.User, error)
	UpdateSettings(ctx context.Context, userID string, settings *model.UserSettings) (*model.UserSettings, error)
	DeleteAccount(ctx context.Context, userID string) error
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func parseUserID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID, name, email string) (*model.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if email != "" && email != user.Email {
		existing, err := s.repo.FindByEmail(ctx, email)
		if err == nil && existing != nil {
			return nil, apperrors.ErrEmailTaken
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, err
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateSettings(ctx context.Context, userID string, settings *model.UserSettings) (*model.UserSettings, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	settings.UserID = id
	if err := s.repo.UpsertSettings(ctx, settings); err != nil {
		return nil, err
	}
	return s.repo.FindSettings(ctx, id)
}

func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	id, err := parseUserID(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
