package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gapscan/resume-gap-analyzer/internal/config"
	"gapscan/resume-gap-analyzer/internal/models"
	"gapscan/resume-gap-analyzer/internal/services"
)

const (
	appName      = "Resume Gap Analyzer API"
	apiVersion   = "1.0.0"
	requestIDKey = "requestid"
)

// NewApp builds the Fiber application with middleware and routes.
func NewApp(cfg *config.Config, analyzeHandler *AnalyzeHandler, extractHandler *ExtractHandler, log *zap.Logger) *fiber.App {
	services.InitMetrics()

	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: ErrorHandler(log),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(models.RootResponse{
			Message: appName,
			Version: apiVersion,
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{Status: "healthy"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/analyze", analyzeHandler.HandleAnalyze)
	app.Post("/extract-text", extractHandler.HandleExtractText)

	return app
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}
