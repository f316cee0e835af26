package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"holo-lookup/internal/core/config"
	"holo-lookup/internal/core/logger"
	"holo-lookup/internal/core/visitor"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "holo-lookup/docs/swagger"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg    *config.AppConfig
	health Pinger
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// New creates a new Server instance with configured middleware.
// health is pinged by /healthz; a nil health always reports ok.
func New(cfg *config.AppConfig, health Pinger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "holo-lookup",
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Use(visitor.New())

	s := &Server{
		App:    app,
		cfg:    cfg,
		health: health,
	}

	app.Get("/healthz", s.healthz)
	app.Get("/swagger/*", swagger.HandlerDefault)

	return s
}

// healthz godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (s *Server) healthz(c *fiber.Ctx) error {
	if s.health == nil {
		return c.JSON(HealthResponse{Status: "ok"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	if err := s.health.Ping(ctx); err != nil {
		logger.Get().Warn("Health check failed", zap.Error(err))
		return c.Status(http.StatusServiceUnavailable).JSON(HealthResponse{
			Status: "unavailable",
			Error:  err.Error(),
		})
	}
	return c.JSON(HealthResponse{Status: "ok"})
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Get().Info("Shutting down server")
	return s.App.ShutdownWithContext(ctx)
}
