package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/validate"
)

func (s *Server) updateUserData(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.Number("userId"), validate.String("field"), validate.String("newValue"))
	if !ok {
		return err
	}

	user, err := s.users.UpdateData(c.Request().Context(),
		v.Int64("userId"), v.String("field"), v.String("newValue"))
	if errors.Is(err, errs.ErrFieldNotAllowed) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Field value can be only: [firstName, lastName]"})
	}
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
