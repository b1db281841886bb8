package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/model"
)

func subjectRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "start_time", "end_time", "even_odd", "grade", "class_number", "day", "user_id",
	})
}

func TestSubjectRepo_Create_ForcesDefaultGrade(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSubjectRepo(db)

	mock.ExpectQuery(`INSERT INTO subjects`).
		WithArgs("Math", "08:00", "09:30", "even", "101", "Monday", int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "grade"}).AddRow(int64(3), 5))

	s := &model.Subject{
		Name: "Math", StartTime: "08:00", EndTime: "09:30",
		EvenOdd: "even", Grade: 2, ClassNumber: "101", Day: "Monday", UserID: 5,
	}
	require.NoError(t, r.Create(context.Background(), s))
	require.Equal(t, int64(3), s.ID)
	require.Equal(t, 5, s.Grade) // caller-supplied grade is ignored
}

func TestSubjectRepo_Update_ScopedByOwner(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSubjectRepo(db)

	mock.ExpectQuery(`UPDATE subjects`).
		WithArgs(int64(3), int64(5), "Math II", "10:00", "11:30", "odd", "102", "Tuesday").
		WillReturnRows(subjectRows().
			AddRow(int64(3), "Math II", "10:00", "11:30", "odd", 5, "102", "Tuesday", int64(5)))

	got, err := r.Update(context.Background(), &model.Subject{
		ID: 3, UserID: 5, Name: "Math II", StartTime: "10:00", EndTime: "11:30",
		EvenOdd: "odd", ClassNumber: "102", Day: "Tuesday",
	})
	require.NoError(t, err)
	require.Equal(t, "Math II", got.Name)
}

func TestSubjectRepo_ChangeDay_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSubjectRepo(db)

	mock.ExpectQuery(`UPDATE subjects SET day=\$3 WHERE id=\$1 AND user_id=\$2`).
		WithArgs(int64(3), int64(5), "Friday").
		WillReturnRows(subjectRows().
			AddRow(int64(3), "Math", "08:00", "09:30", "even", 5, "101", "Friday", int64(5)))

	got, err := r.ChangeDay(context.Background(), 3, 5, "Friday")
	require.NoError(t, err)
	require.Equal(t, "Friday", got.Day)
}

func TestSubjectRepo_ChangeGrade_NotFoundForOtherUser(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSubjectRepo(db)

	mock.ExpectQuery(`UPDATE subjects SET grade=\$3 WHERE id=\$1 AND user_id=\$2`).
		WithArgs(int64(3), int64(6), 4).
		WillReturnError(pgx.ErrNoRows)

	_, err := r.ChangeGrade(context.Background(), 3, 6, 4)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSubjectRepo_Delete_ReturnsRemovedRow(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSubjectRepo(db)

	mock.ExpectQuery(`DELETE FROM subjects WHERE id=\$1 AND user_id=\$2`).
		WithArgs(int64(3), int64(5)).
		WillReturnRows(subjectRows().
			AddRow(int64(3), "Math", "08:00", "09:30", "even", 5, "101", "Monday", int64(5)))

	got, err := r.Delete(context.Background(), 3, 5)
	require.NoError(t, err)
	require.Equal(t, int64(3), got.ID)
}

func TestSubjectRepo_GetAllByUser_Empty(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSubjectRepo(db)

	mock.ExpectQuery(`FROM subjects WHERE user_id=\$1`).
		WithArgs(int64(5)).
		WillReturnRows(subjectRows())

	got, err := r.GetAllByUser(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
