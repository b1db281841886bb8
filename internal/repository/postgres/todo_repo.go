package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/model"
)

// TodoRepo implements repository.TodoRepository using PostgreSQL.
// The sort_order column holds the 1-based position within the user's list.
type TodoRepo struct{ db *DB }

// NewTodoRepo constructs a todo repository.
func NewTodoRepo(db *DB) *TodoRepo { return &TodoRepo{db: db} }

// GetAllByUser returns all todos owned by a user in list order.
func (r *TodoRepo) GetAllByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	const q = `
SELECT id, name, is_complete, sort_order, user_id
FROM todos WHERE user_id=$1 ORDER BY sort_order`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Todo{}
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Name, &t.IsComplete, &t.Order, &t.UserID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create inserts an incomplete todo at the caller-supplied position.
// Callers are expected to pass N+1 when appending; the position is not
// verified here.
func (r *TodoRepo) Create(ctx context.Context, t *model.Todo) error {
	const q = `
INSERT INTO todos (name, is_complete, sort_order, user_id)
VALUES ($1, false, $2, $3)
RETURNING id, is_complete`
	return r.db.Pool.QueryRow(ctx, q, t.Name, t.Order, t.UserID).Scan(&t.ID, &t.IsComplete)
}

// UpdateName renames an owned todo.
func (r *TodoRepo) UpdateName(ctx context.Context, id, userID int64, name string) (*model.Todo, error) {
	const q = `
UPDATE todos SET name=$3 WHERE id=$1 AND user_id=$2
RETURNING id, name, is_complete, sort_order, user_id`
	return scanTodo(r.db.Pool.QueryRow(ctx, q, id, userID, name))
}

// Delete removes an owned todo and returns the removed row.
// The remaining sort_order values are NOT compacted, so deleting a middle
// element leaves a gap until the next reorder touches that range.
func (r *TodoRepo) Delete(ctx context.Context, id, userID int64) (*model.Todo, error) {
	const q = `
DELETE FROM todos WHERE id=$1 AND user_id=$2
RETURNING id, name, is_complete, sort_order, user_id`
	return scanTodo(r.db.Pool.QueryRow(ctx, q, id, userID))
}

// ChangeStatus sets the completion flag of an owned todo.
func (r *TodoRepo) ChangeStatus(ctx context.Context, id, userID int64, isComplete bool) (*model.Todo, error) {
	const q = `
UPDATE todos SET is_complete=$3 WHERE id=$1 AND user_id=$2
RETURNING id, name, is_complete, sort_order, user_id`
	return scanTodo(r.db.Pool.QueryRow(ctx, q, id, userID, isComplete))
}

// Reorder moves a todo to newOrder inside a single transaction.
//
// The current position is re-read under FOR UPDATE, so two concurrent
// reorders for the same user serialize on the target rows and each one
// shifts against the committed state of the other. Moving earlier pushes
// the block [newOrder, current) forward by one; moving later pulls the
// block (current, newOrder] back by one; the target row then takes
// newOrder. Each previously distinct position is claimed by exactly one
// todo afterwards, so the 1..N sequence stays dense.
func (r *TodoRepo) Reorder(ctx context.Context, id, userID int64, newOrder int) (t *model.Todo, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			t, err = nil, e
		}
	}()

	const sel = `SELECT sort_order FROM todos WHERE id=$1 AND user_id=$2 FOR UPDATE`
	var current int
	if err = tx.QueryRow(ctx, sel, id, userID).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = errs.ErrNotFound
		}
		return nil, err
	}

	const cnt = `SELECT COUNT(*) FROM todos WHERE user_id=$1`
	var total int
	if err = tx.QueryRow(ctx, cnt, userID).Scan(&total); err != nil {
		return nil, err
	}
	if newOrder < 1 || newOrder > total {
		err = errs.ErrOrderOutOfRange
		return nil, err
	}

	if newOrder < current {
		const shiftUp = `
UPDATE todos SET sort_order = sort_order + 1
WHERE user_id=$1 AND sort_order >= $2 AND sort_order < $3`
		if _, err = tx.Exec(ctx, shiftUp, userID, newOrder, current); err != nil {
			return nil, err
		}
	} else {
		const shiftDown = `
UPDATE todos SET sort_order = sort_order - 1
WHERE user_id=$1 AND sort_order > $2 AND sort_order <= $3`
		if _, err = tx.Exec(ctx, shiftDown, userID, current, newOrder); err != nil {
			return nil, err
		}
	}

	const upd = `
UPDATE todos SET sort_order=$3 WHERE id=$1 AND user_id=$2
RETURNING id, name, is_complete, sort_order, user_id`
	if t, err = scanTodo(tx.QueryRow(ctx, upd, id, userID, newOrder)); err != nil {
		return nil, err
	}
	return t, nil
}

func scanTodo(row pgx.Row) (*model.Todo, error) {
	var t model.Todo
	if err := row.Scan(&t.ID, &t.Name, &t.IsComplete, &t.Order, &t.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
