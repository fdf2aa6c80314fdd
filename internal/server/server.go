// Package server exposes the persistence gateway over HTTP.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/julianstephens/thirtyday/internal/constants"
	apperrors "github.com/julianstephens/thirtyday/internal/errors"
	"github.com/julianstephens/thirtyday/internal/logger"
	"github.com/julianstephens/thirtyday/internal/storage"
)

const shutdownTimeout = 5 * time.Second

// Backend is the gateway plus the health details the server reports.
type Backend interface {
	storage.Gateway
	Health(ctx context.Context) error
	StorageName() string
}

type Options struct {
	// AllowedOrigins is a comma separated CORS origin list.
	AllowedOrigins string
}

type Server struct {
	app     *fiber.App
	backend Backend
}

func New(backend Backend, opts Options) *Server {
	app := fiber.New(fiber.Config{
		AppName:               constants.AppName,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
		BodyLimit:             64 * 1024,
	})

	origins := opts.AllowedOrigins
	if origins == "" {
		origins = "*"
	}

	app.Use(recover.New())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400,
	}))

	s := &Server{app: app, backend: backend}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")
	api.Get("/health", s.health)
	api.Post("/users/register", s.registerUser)
	api.Post("/users/progress", s.saveProgress)
	api.Get("/users/:userId/progress", s.getProgress)
	api.Get("/leaderboard", s.getLeaderboard)
	api.Post("/share", s.createShare)
	api.Get("/share/:shareId", s.getShare)

	s.app.Get("/share/:shareId", s.sharePage)
}

// App returns the underlying fiber app, for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", addr, "storage", s.backend.StorageName())
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return err
	}
	return <-errCh
}

func errorStatus(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return apperrors.HTTPStatus(err)
}

func errorHandler(c *fiber.Ctx, err error) error {
	status := errorStatus(err)

	msg := err.Error()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		msg = apperrors.PublicMessage(err)
	}
	if status >= fiber.StatusInternalServerError {
		logger.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = errorStatus(err)
		}
		logger.Info("Request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start),
		)
		return err
	}
}
