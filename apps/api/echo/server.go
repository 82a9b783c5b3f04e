package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/content"
	"github.com/trezcool/classboard/core/quiz"
	"github.com/trezcool/classboard/core/user"
)

type (
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		UserSvc        user.ServiceInterface
		ContentSvc     content.ServiceInterface
		QuizSvc        quiz.ServiceInterface
		Validate       *validator.Validate
		Translator     ut.Translator
		DisableReqLogs bool
	}

	Server struct {
		address  string
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		address:  deps.Conf.Server.Addr,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup(deps)
	return s
}

func (s *Server) setup(deps ServerDeps) {
	conf := deps.Conf

	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(deps.Logger, deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home(conf.AppName))

	v1 := s.app.Group("/v1", middleware.JWTWithConfig(newJWTConfig(conf)))
	admin := adminMiddleware(deps.UserSvc)

	registerStatsAPI(v1, admin, deps.UserSvc, deps.Validate)
	registerContentAPI(v1, admin, deps.ContentSvc, deps.Validate, deps.Logger)
	registerQuizAPI(v1, admin, deps.QuizSvc)
}

// Start blocks until the server stops. A failure to serve is sent to Errors.
func (s *Server) Start() {
	if err := s.app.Start(s.address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already shutting down
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(appName string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Welcome to "+appName+" API!")
	}
}
