package service

import (
	"context"
	"errors"

	"github.com/vkurdin/study-organizer/internal/model"
	"github.com/vkurdin/study-organizer/internal/repository"
)

// TodoService defines operations over a user's ordered todo list.
type TodoService interface {
	GetAll(ctx context.Context, userID int64) ([]model.Todo, error)
	Create(ctx context.Context, t *model.Todo) (*model.Todo, error)
	UpdateName(ctx context.Context, id, userID int64, name string) (*model.Todo, error)
	Delete(ctx context.Context, id, userID int64) (*model.Todo, error)
	ChangeStatus(ctx context.Context, id, userID int64, isComplete bool) (*model.Todo, error)
	// Reorder atomically moves a todo to newOrder, keeping the user's
	// order sequence a dense 1..N permutation.
	Reorder(ctx context.Context, id, userID int64, newOrder int) (*model.Todo, error)
}

type TodoServiceImpl struct {
	repo repository.TodoRepository
}

// NewTodoService constructs TodoService.
func NewTodoService(repo repository.TodoRepository) *TodoServiceImpl {
	return &TodoServiceImpl{repo: repo}
}

func (s *TodoServiceImpl) GetAll(ctx context.Context, userID int64) ([]model.Todo, error) {
	if userID <= 0 {
		return nil, errors.New("validation: empty userID")
	}
	return s.repo.GetAllByUser(ctx, userID)
}

func (s *TodoServiceImpl) Create(ctx context.Context, t *model.Todo) (*model.Todo, error) {
	if t.UserID <= 0 || t.Name == "" {
		return nil, errors.New("validation: empty userID/name")
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TodoServiceImpl) UpdateName(ctx context.Context, id, userID int64, name string) (*model.Todo, error) {
	if id <= 0 || userID <= 0 {
		return nil, errors.New("validation: empty todoID/userID")
	}
	return s.repo.UpdateName(ctx, id, userID, name)
}

func (s *TodoServiceImpl) Delete(ctx context.Context, id, userID int64) (*model.Todo, error) {
	if id <= 0 || userID <= 0 {
		return nil, errors.New("validation: empty todoID/userID")
	}
	return s.repo.Delete(ctx, id, userID)
}

func (s *TodoServiceImpl) ChangeStatus(ctx context.Context, id, userID int64, isComplete bool) (*model.Todo, error) {
	if id <= 0 || userID <= 0 {
		return nil, errors.New("validation: empty todoID/userID")
	}
	return s.repo.ChangeStatus(ctx, id, userID, isComplete)
}

// Reorder delegates the shift transaction to the repository; position
// bounds are checked there against the live count.
func (s *TodoServiceImpl) Reorder(ctx context.Context, id, userID int64, newOrder int) (*model.Todo, error) {
	if id <= 0 || userID <= 0 {
		return nil, errors.New("validation: empty todoID/userID")
	}
	return s.repo.Reorder(ctx, id, userID, newOrder)
}
