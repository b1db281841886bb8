package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vkurdin/study-organizer/internal/model"
	"github.com/vkurdin/study-organizer/internal/validate"
)

func (s *Server) getEvents(c echo.Context) error {
	v, ok, err := s.checkRequest(c, validate.Number("userId"))
	if !ok {
		return err
	}

	events, err := s.events.GetAll(c.Request().Context(), v.Int64("userId"))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, events)
}

func (s *Server) createEvent(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("userId"), validate.String("name"), validate.Number("eventDate"))
	if !ok {
		return err
	}

	event, err := s.events.Create(c.Request().Context(), &model.Event{
		Name:      v.String("name"),
		EventDate: v.Int64("eventDate"),
		UserID:    v.Int64("userId"),
	})
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusCreated, event)
}

func (s *Server) updateEvent(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("eventId"), validate.Number("userId"),
		validate.String("name"), validate.Number("eventDate"))
	if !ok {
		return err
	}

	event, err := s.events.Update(c.Request().Context(), &model.Event{
		ID:        v.Int64("eventId"),
		Name:      v.String("name"),
		EventDate: v.Int64("eventDate"),
		UserID:    v.Int64("userId"),
	})
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusCreated, event)
}

func (s *Server) removeEvent(c echo.Context) error {
	v, ok, err := s.checkRequest(c, validate.Number("eventId"), validate.Number("userId"))
	if !ok {
		return err
	}

	event, err := s.events.Delete(c.Request().Context(), v.Int64("eventId"), v.Int64("userId"))
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusCreated, event)
}
