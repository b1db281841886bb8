package repository

import (
	"context"

	"github.com/vkurdin/study-organizer/internal/model"
)

// TodoRepository provides per-user todo storage, scoped by (id, userID).
//
// For a fixed user the order values of all todos form the dense sequence
// 1..N. Create trusts the caller-supplied position and Reorder restores
// density after a move; Delete intentionally performs no compaction, so a
// removed middle element leaves a gap until the next reorder.
type TodoRepository interface {
	// GetAllByUser returns all todos owned by a user.
	GetAllByUser(ctx context.Context, userID int64) ([]model.Todo, error)
	// Create inserts an incomplete todo at the caller-supplied position.
	Create(ctx context.Context, t *model.Todo) error
	// UpdateName renames a todo and returns the stored row.
	UpdateName(ctx context.Context, id, userID int64, name string) (*model.Todo, error)
	// Delete removes a todo and returns the removed row. No order compaction.
	Delete(ctx context.Context, id, userID int64) (*model.Todo, error)
	// ChangeStatus sets the completion flag and returns the stored row.
	ChangeStatus(ctx context.Context, id, userID int64, isComplete bool) (*model.Todo, error)
	// Reorder atomically moves a todo to newOrder, shifting every todo
	// between the old and new position by one so the sequence stays dense.
	// newOrder outside [1, N] yields errs.ErrOrderOutOfRange.
	Reorder(ctx context.Context, id, userID int64, newOrder int) (*model.Todo, error)
}
