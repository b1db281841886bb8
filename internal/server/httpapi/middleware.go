package httpapi

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Echo context keys populated by the middleware.
const (
	ctxUserID    = "auth.userID"
	ctxUsername  = "auth.username"
	ctxToken     = "auth.token"
	ctxRequestID = "request.id"
)

// verifyToken authenticates the bearer token and stores the caller's
// identity in the request context. A missing or malformed header is
// rejected before signature checks, with a distinct status.
func (s *Server) verifyToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "No token provided or invalid format"})
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := s.tokens.Verify(raw)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or expired token"})
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxToken, raw)
		return next(c)
	}
}

// requestID tags every request with a fresh UUID, echoed in X-Request-Id.
func (s *Server) requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := uuid.NewV4()
			if err == nil {
				c.Set(ctxRequestID, id.String())
				c.Response().Header().Set(echo.HeaderXRequestID, id.String())
			}
			return next(c)
		}
	}
}

// requestLogger logs request metadata, never payloads.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			reqID, _ := c.Get(ctxRequestID).(string)
			s.log.Info("http",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("dur", time.Since(start)),
				zap.String("requestId", reqID),
				zap.String("remote", c.RealIP()),
			)
			return nil
		}
	}
}

// recoverPanic converts handler panics into a 500 response.
func (s *Server) recoverPanic() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("panic",
						zap.Any("reason", r),
						zap.ByteString("stack", debug.Stack()),
						zap.String("path", c.Request().URL.Path),
					)
					err = c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal"})
				}
			}()
			return next(c)
		}
	}
}
