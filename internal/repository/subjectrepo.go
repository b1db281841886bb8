package repository

import (
	"context"

	"github.com/vkurdin/study-organizer/internal/model"
)

// SubjectRepository provides per-user subject storage.
// Every lookup and mutation is scoped by (id, userID).
type SubjectRepository interface {
	// GetAllByUser returns all subjects owned by a user.
	GetAllByUser(ctx context.Context, userID int64) ([]model.Subject, error)
	// Create inserts a subject with the default grade and fills its ID.
	Create(ctx context.Context, s *model.Subject) error
	// Update overwrites every mutable field and returns the stored row.
	Update(ctx context.Context, s *model.Subject) (*model.Subject, error)
	// Delete removes a subject and returns the removed row.
	Delete(ctx context.Context, id, userID int64) (*model.Subject, error)
	// ChangeDay updates only the day field.
	ChangeDay(ctx context.Context, id, userID int64, day string) (*model.Subject, error)
	// ChangeGrade updates only the grade field.
	ChangeGrade(ctx context.Context, id, userID int64, grade int) (*model.Subject, error)
}
