// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/vkurdin/study-organizer/internal/model"
)

// UserRepository provides account storage.
type UserRepository interface {
	// Create inserts a new user and fills the server-assigned ID and CreatedAt.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByUsername loads a user by unique username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// UpdateFirstName sets the user's first name and returns the updated row.
	UpdateFirstName(ctx context.Context, id int64, value string) (*model.User, error)
	// UpdateLastName sets the user's last name and returns the updated row.
	UpdateLastName(ctx context.Context, id int64, value string) (*model.User, error)
}
