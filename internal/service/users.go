package service

import (
	"context"
	"errors"

	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/model"
	"github.com/vkurdin/study-organizer/internal/repository"
)

// Updatable user profile fields.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
)

// UserService defines profile update operations.
type UserService interface {
	// UpdateData sets a single whitelisted profile field.
	// Fields outside {firstName, lastName} yield errs.ErrFieldNotAllowed.
	UpdateData(ctx context.Context, userID int64, field, newValue string) (*model.User, error)
}

type UserServiceImpl struct {
	repo repository.UserRepository
}

// NewUserService constructs UserService.
func NewUserService(repo repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) UpdateData(ctx context.Context, userID int64, field, newValue string) (*model.User, error) {
	if userID <= 0 {
		return nil, errors.New("validation: empty userID")
	}
	switch field {
	case FieldFirstName:
		return s.repo.UpdateFirstName(ctx, userID, newValue)
	case FieldLastName:
		return s.repo.UpdateLastName(ctx, userID, newValue)
	default:
		return nil, errs.ErrFieldNotAllowed
	}
}
