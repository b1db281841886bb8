package service

import (
	"context"
	"errors"

	"github.com/vkurdin/study-organizer/internal/model"
	"github.com/vkurdin/study-organizer/internal/repository"
)

// EventService defines operations over a user's calendar events.
type EventService interface {
	GetAll(ctx context.Context, userID int64) ([]model.Event, error)
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	Update(ctx context.Context, e *model.Event) (*model.Event, error)
	Delete(ctx context.Context, id, userID int64) (*model.Event, error)
}

type EventServiceImpl struct {
	repo repository.EventRepository
}

// NewEventService constructs EventService.
func NewEventService(repo repository.EventRepository) *EventServiceImpl {
	return &EventServiceImpl{repo: repo}
}

func (s *EventServiceImpl) GetAll(ctx context.Context, userID int64) ([]model.Event, error) {
	if userID <= 0 {
		return nil, errors.New("validation: empty userID")
	}
	return s.repo.GetAllByUser(ctx, userID)
}

func (s *EventServiceImpl) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	if e.UserID <= 0 || e.Name == "" {
		return nil, errors.New("validation: empty userID/name")
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, e *model.Event) (*model.Event, error) {
	if e.ID <= 0 || e.UserID <= 0 {
		return nil, errors.New("validation: empty eventID/userID")
	}
	return s.repo.Update(ctx, e)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id, userID int64) (*model.Event, error) {
	if id <= 0 || userID <= 0 {
		return nil, errors.New("validation: empty eventID/userID")
	}
	return s.repo.Delete(ctx, id, userID)
}
