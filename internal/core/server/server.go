package server

import (
	"errors"
	"fmt"

	"github.com/johnscottcothill/help-hub-order-api/internal/core/config"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/cors"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/logger"
	"github.com/johnscottcothill/help-hub-order-api/internal/core/metrics"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "github.com/johnscottcothill/help-hub-order-api/docs/swagger"
)

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// New creates a new Server instance with configured middleware and the
// operational routes every deployment gets. Feature routes are registered by
// the caller.
func New(cfg *config.AppConfig) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "help-hub-order-api",
		ErrorHandler:          jsonErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(recoverer.New())

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Use(metrics.Middleware())

	app.Use(cors.New(cfg.Origins()))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	app.Get("/", liveness(cfg.Environment))

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// liveness godoc
// @Summary Service liveness
// @Description Confirms the API process is up. Carries no order data.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func liveness(env string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":      true,
			"service": "help-hub-order-api",
			"env":     env,
		})
	}
}

// jsonErrorHandler keeps the JSON-everywhere contract for errors that escape
// the handlers: router 404s, recovered panics, body-limit errors. The help
// widget parses every response body, so nothing may answer in plain text.
func jsonErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	logger.Get().Error("unhandled request error",
		zap.Int("status", code),
		zap.String("path", c.Path()),
		zap.Error(err),
	)

	rayID, _ := c.Locals("requestid").(string)
	return c.Status(code).JSON(fiber.Map{
		"ok":     false,
		"error":  message,
		"ray_id": rayID,
	})
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}
