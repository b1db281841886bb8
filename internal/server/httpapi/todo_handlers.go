package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/model"
	"github.com/vkurdin/study-organizer/internal/validate"
)

func (s *Server) getTodos(c echo.Context) error {
	v, ok, err := s.checkRequest(c, validate.Number("userId"))
	if !ok {
		return err
	}

	todos, err := s.todos.GetAll(c.Request().Context(), v.Int64("userId"))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

func (s *Server) createTodo(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("userId"), validate.String("name"), validate.Number("order"))
	if !ok {
		return err
	}

	todo, err := s.todos.Create(c.Request().Context(), &model.Todo{
		Name:   v.String("name"),
		Order:  v.Int("order"),
		UserID: v.Int64("userId"),
	})
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}

func (s *Server) updateTodo(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("todoId"), validate.Number("userId"), validate.String("name"))
	if !ok {
		return err
	}

	todo, err := s.todos.UpdateName(c.Request().Context(),
		v.Int64("todoId"), v.Int64("userId"), v.String("name"))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}

func (s *Server) removeTodo(c echo.Context) error {
	v, ok, err := s.checkRequest(c, validate.Number("todoId"), validate.Number("userId"))
	if !ok {
		return err
	}

	todo, err := s.todos.Delete(c.Request().Context(), v.Int64("todoId"), v.Int64("userId"))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}

func (s *Server) changeTodoStatus(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("todoId"), validate.Number("userId"), validate.Boolean("isComplete"))
	if !ok {
		return err
	}

	todo, err := s.todos.ChangeStatus(c.Request().Context(),
		v.Int64("todoId"), v.Int64("userId"), v.Bool("isComplete"))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}

// reorderTodo moves a todo to a new position. The oldOrder field is part
// of the request contract but the engine re-reads the current position
// inside its transaction, so the client's value is never trusted.
func (s *Server) reorderTodo(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("todoId"), validate.Number("userId"),
		validate.Number("order"), validate.Number("oldOrder"))
	if !ok {
		return err
	}

	todo, err := s.todos.Reorder(c.Request().Context(),
		v.Int64("todoId"), v.Int64("userId"), v.Int("order"))
	if err != nil {
		if errors.Is(err, errs.ErrOrderOutOfRange) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Order value is out of range"})
		}
		return badRequest(c, err)
	}
	return c.JSON(http.StatusCreated, todo)
}
