package service

import (
	"context"
	"errors"

	"github.com/vkurdin/study-organizer/internal/model"
	"github.com/vkurdin/study-organizer/internal/repository"
)

// SubjectService defines operations over a user's class schedule.
type SubjectService interface {
	// GetAll returns all subjects of a user.
	GetAll(ctx context.Context, userID int64) ([]model.Subject, error)
	// Create inserts a subject with the default grade.
	Create(ctx context.Context, s *model.Subject) (*model.Subject, error)
	// Update overwrites all mutable fields of an owned subject.
	Update(ctx context.Context, s *model.Subject) (*model.Subject, error)
	// Delete removes an owned subject.
	Delete(ctx context.Context, id, userID int64) (*model.Subject, error)
	// ChangeDay updates only the day field.
	ChangeDay(ctx context.Context, id, userID int64, day string) (*model.Subject, error)
	// ChangeGrade updates only the grade field.
	ChangeGrade(ctx context.Context, id, userID int64, grade int) (*model.Subject, error)
}

type SubjectServiceImpl struct {
	repo repository.SubjectRepository
}

// NewSubjectService constructs SubjectService.
func NewSubjectService(repo repository.SubjectRepository) *SubjectServiceImpl {
	return &SubjectServiceImpl{repo: repo}
}

func (s *SubjectServiceImpl) GetAll(ctx context.Context, userID int64) ([]model.Subject, error) {
	if userID <= 0 {
		return nil, errors.New("validation: empty userID")
	}
	return s.repo.GetAllByUser(ctx, userID)
}

func (s *SubjectServiceImpl) Create(ctx context.Context, sub *model.Subject) (*model.Subject, error) {
	if sub.UserID <= 0 || sub.Name == "" {
		return nil, errors.New("validation: empty userID/name")
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubjectServiceImpl) Update(ctx context.Context, sub *model.Subject) (*model.Subject, error) {
	if sub.ID <= 0 || sub.UserID <= 0 {
		return nil, errors.New("validation: empty subjectID/userID")
	}
	return s.repo.Update(ctx, sub)
}

func (s *SubjectServiceImpl) Delete(ctx context.Context, id, userID int64) (*model.Subject, error) {
	if id <= 0 || userID <= 0 {
		return nil, errors.New("validation: empty subjectID/userID")
	}
	return s.repo.Delete(ctx, id, userID)
}

func (s *SubjectServiceImpl) ChangeDay(ctx context.Context, id, userID int64, day string) (*model.Subject, error) {
	if id <= 0 || userID <= 0 {
		return nil, errors.New("validation: empty subjectID/userID")
	}
	return s.repo.ChangeDay(ctx, id, userID, day)
}

func (s *SubjectServiceImpl) ChangeGrade(ctx context.Context, id, userID int64, grade int) (*model.Subject, error) {
	if id <= 0 || userID <= 0 {
		return nil, errors.New("validation: empty subjectID/userID")
	}
	return s.repo.ChangeGrade(ctx, id, userID, grade)
}
