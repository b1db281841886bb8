package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vkurdin/study-organizer/internal/model"
	"github.com/vkurdin/study-organizer/internal/validate"
)

func (s *Server) getSubjects(c echo.Context) error {
	v, ok, err := s.checkRequest(c, validate.Number("userId"))
	if !ok {
		return err
	}

	subjects, err := s.subjects.GetAll(c.Request().Context(), v.Int64("userId"))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, subjects)
}

func (s *Server) createSubject(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("userId"), validate.String("name"),
		validate.String("startTime"), validate.String("endTime"),
		validate.String("evenOdd"), validate.String("classNumber"), validate.String("day"))
	if !ok {
		return err
	}

	subject, err := s.subjects.Create(c.Request().Context(), &model.Subject{
		Name:        v.String("name"),
		StartTime:   v.String("startTime"),
		EndTime:     v.String("endTime"),
		EvenOdd:     v.String("evenOdd"),
		ClassNumber: v.String("classNumber"),
		Day:         v.String("day"),
		UserID:      v.Int64("userId"),
	})
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusCreated, subject)
}

func (s *Server) updateSubject(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("subjectId"), validate.Number("userId"), validate.String("name"),
		validate.String("startTime"), validate.String("endTime"),
		validate.String("evenOdd"), validate.String("classNumber"), validate.String("day"))
	if !ok {
		return err
	}

	subject, err := s.subjects.Update(c.Request().Context(), &model.Subject{
		ID:          v.Int64("subjectId"),
		Name:        v.String("name"),
		StartTime:   v.String("startTime"),
		EndTime:     v.String("endTime"),
		EvenOdd:     v.String("evenOdd"),
		ClassNumber: v.String("classNumber"),
		Day:         v.String("day"),
		UserID:      v.Int64("userId"),
	})
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusCreated, subject)
}

func (s *Server) removeSubject(c echo.Context) error {
	v, ok, err := s.checkRequest(c, validate.Number("subjectId"), validate.Number("userId"))
	if !ok {
		return err
	}

	subject, err := s.subjects.Delete(c.Request().Context(), v.Int64("subjectId"), v.Int64("userId"))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, subject)
}

func (s *Server) changeSubjectDay(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("subjectId"), validate.Number("userId"), validate.String("day"))
	if !ok {
		return err
	}

	subject, err := s.subjects.ChangeDay(c.Request().Context(),
		v.Int64("subjectId"), v.Int64("userId"), v.String("day"))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, subject)
}

func (s *Server) changeSubjectGrade(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("subjectId"), validate.Number("userId"), validate.Number("grade"))
	if !ok {
		return err
	}

	subject, err := s.subjects.ChangeGrade(c.Request().Context(),
		v.Int64("subjectId"), v.Int64("userId"), v.Int("grade"))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, subject)
}
