package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/model"
)

// EventRepo implements repository.EventRepository using PostgreSQL.
type EventRepo struct{ db *DB }

// NewEventRepo constructs an event repository.
func NewEventRepo(db *DB) *EventRepo { return &EventRepo{db: db} }

// GetAllByUser returns all events owned by a user.
func (r *EventRepo) GetAllByUser(ctx context.Context, userID int64) ([]model.Event, error) {
	const q = `
SELECT id, name, event_date, user_id
FROM events WHERE user_id=$1 ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Event{}
	for rows.Next() {
		var (
			e  model.Event
			dt time.Time
		)
		if err := rows.Scan(&e.ID, &e.Name, &dt, &e.UserID); err != nil {
			return nil, err
		}
		e.EventDate = msFromTime(dt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Create inserts an event; EventDate is provided as epoch milliseconds.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	const q = `
INSERT INTO events (name, event_date, user_id)
VALUES ($1, $2, $3)
RETURNING id`
	return r.db.Pool.QueryRow(ctx, q, e.Name, timeFromMS(e.EventDate), e.UserID).Scan(&e.ID)
}

// Update overwrites name and date of an owned event.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) (*model.Event, error) {
	const q = `
UPDATE events SET name=$3, event_date=$4
WHERE id=$1 AND user_id=$2
RETURNING id, name, event_date, user_id`
	return r.scanEvent(r.db.Pool.QueryRow(ctx, q, e.ID, e.UserID, e.Name, timeFromMS(e.EventDate)))
}

// Delete removes an owned event and returns the removed row.
func (r *EventRepo) Delete(ctx context.Context, id, userID int64) (*model.Event, error) {
	const q = `
DELETE FROM events WHERE id=$1 AND user_id=$2
RETURNING id, name, event_date, user_id`
	return r.scanEvent(r.db.Pool.QueryRow(ctx, q, id, userID))
}

func (r *EventRepo) scanEvent(row pgx.Row) (*model.Event, error) {
	var (
		e  model.Event
		dt time.Time
	)
	if err := row.Scan(&e.ID, &e.Name, &dt, &e.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	e.EventDate = msFromTime(dt)
	return &e, nil
}
