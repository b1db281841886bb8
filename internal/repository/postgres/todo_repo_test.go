package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/model"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func todoRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "is_complete", "sort_order", "user_id"})
}

const (
	reorderSel   = `SELECT sort_order FROM todos WHERE id=\$1 AND user_id=\$2 FOR UPDATE`
	reorderCount = `SELECT COUNT\(\*\) FROM todos WHERE user_id=\$1`
	reorderShiftUp = `UPDATE todos SET sort_order = sort_order \+ 1\s+` +
		`WHERE user_id=\$1 AND sort_order >= \$2 AND sort_order < \$3`
	reorderShiftDown = `UPDATE todos SET sort_order = sort_order - 1\s+` +
		`WHERE user_id=\$1 AND sort_order > \$2 AND sort_order <= \$3`
	reorderUpd = `UPDATE todos SET sort_order=\$3 WHERE id=\$1 AND user_id=\$2`
)

func TestTodoRepo_Reorder_MoveEarlier_ShiftsBlockForward(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	// three todos 1,2,3; move the order-3 item to position 1:
	// the block [1,3) moves forward by one, the target takes 1.
	mock.ExpectBegin()
	mock.ExpectQuery(reorderSel).
		WithArgs(int64(7), int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"sort_order"}).AddRow(3))
	mock.ExpectQuery(reorderCount).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec(reorderShiftUp).
		WithArgs(int64(5), 1, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectQuery(reorderUpd).
		WithArgs(int64(7), int64(5), 1).
		WillReturnRows(todoRows().AddRow(int64(7), "laundry", false, 1, int64(5)))
	mock.ExpectCommit()

	got, err := r.Reorder(context.Background(), 7, 5, 1)
	require.NoError(t, err)
	require.Equal(t, 1, got.Order)
	require.Equal(t, int64(7), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_Reorder_MoveLater_ShiftsBlockBack(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	// todos A(order=1), B(order=2); moving A to 2 pulls (1,2] back by one.
	mock.ExpectBegin()
	mock.ExpectQuery(reorderSel).
		WithArgs(int64(1), int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"sort_order"}).AddRow(1))
	mock.ExpectQuery(reorderCount).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(reorderShiftDown).
		WithArgs(int64(5), 1, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(reorderUpd).
		WithArgs(int64(1), int64(5), 2).
		WillReturnRows(todoRows().AddRow(int64(1), "A", false, 2, int64(5)))
	mock.ExpectCommit()

	got, err := r.Reorder(context.Background(), 1, 5, 2)
	require.NoError(t, err)
	require.Equal(t, 2, got.Order)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_Reorder_SamePosition_NoEffectiveShift(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	// newOrder == current: the (current, newOrder] range is empty,
	// so the shift touches zero rows and the final write is a no-op value.
	mock.ExpectBegin()
	mock.ExpectQuery(reorderSel).
		WithArgs(int64(9), int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"sort_order"}).AddRow(2))
	mock.ExpectQuery(reorderCount).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec(reorderShiftDown).
		WithArgs(int64(5), 2, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(reorderUpd).
		WithArgs(int64(9), int64(5), 2).
		WillReturnRows(todoRows().AddRow(int64(9), "same", true, 2, int64(5)))
	mock.ExpectCommit()

	got, err := r.Reorder(context.Background(), 9, 5, 2)
	require.NoError(t, err)
	require.Equal(t, 2, got.Order)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_Reorder_NotFound_RollsBack(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	// a todo id owned by a different user is invisible to the scoped select
	mock.ExpectBegin()
	mock.ExpectQuery(reorderSel).
		WithArgs(int64(7), int64(6)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := r.Reorder(context.Background(), 7, 6, 1)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_Reorder_OutOfRange_RollsBack(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	for _, newOrder := range []int{0, -1, 4} {
		mock.ExpectBegin()
		mock.ExpectQuery(reorderSel).
			WithArgs(int64(7), int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"sort_order"}).AddRow(2))
		mock.ExpectQuery(reorderCount).
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectRollback()

		_, err := r.Reorder(context.Background(), 7, 5, newOrder)
		require.ErrorIs(t, err, errs.ErrOrderOutOfRange, "newOrder=%d", newOrder)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_Reorder_ShiftFailure_RollsBack(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectQuery(reorderSel).
		WithArgs(int64(7), int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"sort_order"}).AddRow(3))
	mock.ExpectQuery(reorderCount).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec(reorderShiftUp).
		WithArgs(int64(5), 1, 3).
		WillReturnError(boom)
	mock.ExpectRollback()

	_, err := r.Reorder(context.Background(), 7, 5, 1)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_Create_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	mock.ExpectQuery(`INSERT INTO todos \(name, is_complete, sort_order, user_id\)`).
		WithArgs("read ch. 4", 3, int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "is_complete"}).AddRow(int64(11), false))

	todo := &model.Todo{Name: "read ch. 4", Order: 3, UserID: 5}
	err := r.Create(context.Background(), todo)
	require.NoError(t, err)
	require.Equal(t, int64(11), todo.ID)
	require.False(t, todo.IsComplete)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_Delete_NoCompaction(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	// a single scoped DELETE, no shift statements follow
	mock.ExpectQuery(`DELETE FROM todos WHERE id=\$1 AND user_id=\$2`).
		WithArgs(int64(11), int64(5)).
		WillReturnRows(todoRows().AddRow(int64(11), "read ch. 4", false, 2, int64(5)))

	got, err := r.Delete(context.Background(), 11, 5)
	require.NoError(t, err)
	require.Equal(t, 2, got.Order)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepo_Delete_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	mock.ExpectQuery(`DELETE FROM todos WHERE id=\$1 AND user_id=\$2`).
		WithArgs(int64(11), int64(6)).
		WillReturnError(pgx.ErrNoRows)

	_, err := r.Delete(context.Background(), 11, 6)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestTodoRepo_ChangeStatus_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	mock.ExpectQuery(`UPDATE todos SET is_complete=\$3 WHERE id=\$1 AND user_id=\$2`).
		WithArgs(int64(11), int64(5), true).
		WillReturnRows(todoRows().AddRow(int64(11), "read ch. 4", true, 2, int64(5)))

	got, err := r.ChangeStatus(context.Background(), 11, 5, true)
	require.NoError(t, err)
	require.True(t, got.IsComplete)
}

func TestTodoRepo_GetAllByUser_OrderedBySortOrder(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewTodoRepo(db)

	mock.ExpectQuery(`FROM todos WHERE user_id=\$1 ORDER BY sort_order`).
		WithArgs(int64(5)).
		WillReturnRows(todoRows().
			AddRow(int64(2), "b", false, 1, int64(5)).
			AddRow(int64(1), "a", true, 2, int64(5)))

	got, err := r.GetAllByUser(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].Order)
	require.Equal(t, 2, got[1].Order)
}
