package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/validate"
)

// authCookieMaxAge matches the client session lifetime, not the token TTL.
const authCookieMaxAge = 2 * time.Hour

func (s *Server) login(c echo.Context) error {
	v, ok, err := s.checkRequest(c, validate.String("username"), validate.String("password"))
	if !ok {
		return err
	}

	user, tok, err := s.auth.LoginWithIP(c.Request().Context(), v.String("username"), v.String("password"), c.RealIP())
	switch {
	case errors.Is(err, errs.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Too many login attempts, try again later !"})
	case errors.Is(err, errs.ErrUnauthorized):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Wrong username or password !"})
	case err != nil:
		return badRequest(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     "auth.token",
		Value:    tok,
		MaxAge:   int(authCookieMaxAge.Seconds()),
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"user": user, "token": tok})
}

func (s *Server) register(c echo.Context) error {
	v, ok, err := s.checkRequest(c,
		validate.String("username"), validate.String("password"), validate.String("repeatPassword"))
	if !ok {
		return err
	}

	user, tok, err := s.auth.Register(c.Request().Context(),
		v.String("username"), v.String("password"), v.String("repeatPassword"))
	switch {
	case errors.Is(err, errs.ErrPasswordMismatch):
		return c.JSON(http.StatusConflict, echo.Map{"error": "Password and repeat password are not the same !"})
	case errors.Is(err, errs.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "User already exists !"})
	case err != nil:
		return badRequest(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"user": user, "token": tok})
}

func (s *Server) logout(c echo.Context) error {
	// tokens are stateless, nothing to invalidate server-side
	return c.JSON(http.StatusOK, echo.Map{"msg": "Logout successfully !"})
}

func (s *Server) session(c echo.Context) error {
	username, _ := c.Get(ctxUsername).(string)

	user, err := s.auth.Session(c.Request().Context(), username)
	if errors.Is(err, errs.ErrNotFound) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Session not found"})
	}
	if err != nil {
		return badRequest(c, err)
	}

	tok, _ := c.Get(ctxToken).(string)
	return c.JSON(http.StatusOK, echo.Map{"user": user, "token": tok})
}
