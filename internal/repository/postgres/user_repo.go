package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/model"
)

// UserRepo implements repository.UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row and fills the server-assigned fields.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (username, password_hash, first_name, last_name)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	var createdAt time.Time
	err := r.db.Pool.QueryRow(ctx, q, u.Username, u.PasswordHash, u.FirstName, u.LastName).
		Scan(&u.ID, &createdAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	if err != nil {
		return err
	}
	u.CreatedAt = msFromTime(createdAt)
	return nil
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
SELECT id, username, password_hash, first_name, last_name, created_at
FROM users WHERE id=$1`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByUsername selects a user by unique username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `
SELECT id, username, password_hash, first_name, last_name, created_at
FROM users WHERE username=$1`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, username))
}

// UpdateFirstName sets first_name and returns the updated row.
func (r *UserRepo) UpdateFirstName(ctx context.Context, id int64, value string) (*model.User, error) {
	const q = `
UPDATE users SET first_name=$2 WHERE id=$1
RETURNING id, username, password_hash, first_name, last_name, created_at`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, id, value))
}

// UpdateLastName sets last_name and returns the updated row.
func (r *UserRepo) UpdateLastName(ctx context.Context, id int64, value string) (*model.User, error) {
	const q = `
UPDATE users SET last_name=$2 WHERE id=$1
RETURNING id, username, password_hash, first_name, last_name, created_at`
	return r.scanUser(r.db.Pool.QueryRow(ctx, q, id, value))
}

func (r *UserRepo) scanUser(row pgx.Row) (*model.User, error) {
	var (
		u         model.User
		createdAt time.Time
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FirstName, &u.LastName, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	u.CreatedAt = msFromTime(createdAt)
	return &u, nil
}
