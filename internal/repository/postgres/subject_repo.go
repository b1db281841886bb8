package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/model"
)

const subjectCols = `id, name, start_time, end_time, even_odd, grade, class_number, day, user_id`

// SubjectRepo implements repository.SubjectRepository using PostgreSQL.
type SubjectRepo struct{ db *DB }

// NewSubjectRepo constructs a subject repository.
func NewSubjectRepo(db *DB) *SubjectRepo { return &SubjectRepo{db: db} }

// GetAllByUser returns all subjects owned by a user.
func (r *SubjectRepo) GetAllByUser(ctx context.Context, userID int64) ([]model.Subject, error) {
	const q = `
SELECT ` + subjectCols + `
FROM subjects WHERE user_id=$1 ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Subject{}
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.EvenOdd,
			&s.Grade, &s.ClassNumber, &s.Day, &s.UserID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a subject. Grade always starts at 5 regardless of input.
func (r *SubjectRepo) Create(ctx context.Context, s *model.Subject) error {
	const q = `
INSERT INTO subjects (name, start_time, end_time, even_odd, grade, class_number, day, user_id)
VALUES ($1, $2, $3, $4, 5, $5, $6, $7)
RETURNING id, grade`
	return r.db.Pool.
		QueryRow(ctx, q, s.Name, s.StartTime, s.EndTime, s.EvenOdd, s.ClassNumber, s.Day, s.UserID).
		Scan(&s.ID, &s.Grade)
}

// Update overwrites all mutable fields of an owned subject.
func (r *SubjectRepo) Update(ctx context.Context, s *model.Subject) (*model.Subject, error) {
	const q = `
UPDATE subjects
SET name=$3, start_time=$4, end_time=$5, even_odd=$6, class_number=$7, day=$8
WHERE id=$1 AND user_id=$2
RETURNING ` + subjectCols
	return r.scanSubject(r.db.Pool.QueryRow(ctx, q,
		s.ID, s.UserID, s.Name, s.StartTime, s.EndTime, s.EvenOdd, s.ClassNumber, s.Day))
}

// Delete removes an owned subject and returns the removed row.
func (r *SubjectRepo) Delete(ctx context.Context, id, userID int64) (*model.Subject, error) {
	const q = `
DELETE FROM subjects WHERE id=$1 AND user_id=$2
RETURNING ` + subjectCols
	return r.scanSubject(r.db.Pool.QueryRow(ctx, q, id, userID))
}

// ChangeDay updates only the day field of an owned subject.
func (r *SubjectRepo) ChangeDay(ctx context.Context, id, userID int64, day string) (*model.Subject, error) {
	const q = `
UPDATE subjects SET day=$3 WHERE id=$1 AND user_id=$2
RETURNING ` + subjectCols
	return r.scanSubject(r.db.Pool.QueryRow(ctx, q, id, userID, day))
}

// ChangeGrade updates only the grade field of an owned subject.
func (r *SubjectRepo) ChangeGrade(ctx context.Context, id, userID int64, grade int) (*model.Subject, error) {
	const q = `
UPDATE subjects SET grade=$3 WHERE id=$1 AND user_id=$2
RETURNING ` + subjectCols
	return r.scanSubject(r.db.Pool.QueryRow(ctx, q, id, userID, grade))
}

func (r *SubjectRepo) scanSubject(row pgx.Row) (*model.Subject, error) {
	var s model.Subject
	if err := row.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.EvenOdd,
		&s.Grade, &s.ClassNumber, &s.Day, &s.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
