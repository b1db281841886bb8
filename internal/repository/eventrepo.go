package repository

import (
	"context"

	"github.com/vkurdin/study-organizer/internal/model"
)

// EventRepository provides per-user event storage, scoped by (id, userID).
type EventRepository interface {
	// GetAllByUser returns all events owned by a user.
	GetAllByUser(ctx context.Context, userID int64) ([]model.Event, error)
	// Create inserts an event and fills its ID.
	Create(ctx context.Context, e *model.Event) error
	// Update overwrites name and date and returns the stored row.
	Update(ctx context.Context, e *model.Event) (*model.Event, error)
	// Delete removes an event and returns the removed row.
	Delete(ctx context.Context, id, userID int64) (*model.Event, error)
}
