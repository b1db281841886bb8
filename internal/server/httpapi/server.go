// Package httpapi exposes the REST API over echo.
package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/vkurdin/study-organizer/internal/service"
	"github.com/vkurdin/study-organizer/internal/token"
)

// Server holds the application services behind the HTTP handlers.
type Server struct {
	auth     service.AuthService
	subjects service.SubjectService
	events   service.EventService
	todos    service.TodoService
	users    service.UserService
	tokens   *token.Manager
	log      *zap.Logger
}

// New constructs the HTTP server facade.
func New(
	auth service.AuthService,
	subjects service.SubjectService,
	events service.EventService,
	todos service.TodoService,
	users service.UserService,
	tokens *token.Manager,
	log *zap.Logger,
) *Server {
	return &Server{
		auth:     auth,
		subjects: subjects,
		events:   events,
		todos:    todos,
		users:    users,
		tokens:   tokens,
		log:      log,
	}
}

// Router builds the echo engine with middleware and all API routes.
// clientURL is the single allowed CORS origin.
func (s *Server) Router(clientURL string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(s.requestID())
	e.Use(s.requestLogger())
	e.Use(s.recoverPanic())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{clientURL},
		AllowCredentials: true,
	}))

	e.GET("/api/example/ping", s.ping)

	auth := e.Group("/api/auth")
	auth.POST("/login", s.login)
	auth.POST("/register", s.register)
	auth.POST("/logout", s.logout)
	auth.GET("/session", s.session, s.verifyToken)

	subject := e.Group("/api/subject", s.verifyToken)
	subject.GET("/:userId", s.getSubjects)
	subject.POST("", s.createSubject)
	subject.PUT("/:subjectId", s.updateSubject)
	subject.DELETE("/:subjectId", s.removeSubject)
	subject.POST("/changeDay/:subjectId", s.changeSubjectDay)
	subject.POST("/changeGrade/:subjectId", s.changeSubjectGrade)

	event := e.Group("/api/event", s.verifyToken)
	event.GET("/:userId", s.getEvents)
	event.POST("", s.createEvent)
	event.PUT("/:eventId", s.updateEvent)
	event.DELETE("/:eventId", s.removeEvent)

	todo := e.Group("/api/todo", s.verifyToken)
	todo.GET("/:userId", s.getTodos)
	todo.POST("", s.createTodo)
	todo.PUT("/:todoId", s.updateTodo)
	todo.DELETE("/:todoId", s.removeTodo)
	todo.POST("/changeStatus/:todoId", s.changeTodoStatus)
	todo.POST("/reorder/:todoId", s.reorderTodo)

	user := e.Group("/api/user", s.verifyToken)
	user.PUT("/updateData", s.updateUserData)

	return e
}

func (s *Server) ping(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"msg": "pong"})
}
