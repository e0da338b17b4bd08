package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"hirelens/resume-screener/internal/config"
	"hirelens/resume-screener/internal/handlers"
	"hirelens/resume-screener/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Load the pre-trained classifier artifact. It is a load-time dependency
	// only; the evaluate path never invokes it.
	classifier := services.NewClassifierStore(cfg.Model.Path, cfg.Model.ArtifactURL)
	if err := classifier.Load(); err != nil {
		log.Fatalf("❌ Failed to load classifier artifact: %v", err)
	}

	// Initialize services. The annotator is a process-wide singleton,
	// injected into the skill service rather than referenced globally.
	annotator := services.DefaultAnnotator()
	skills := services.NewSkillService(annotator)
	extractor := services.NewExtractorService()
	evaluator := services.NewEvaluatorService(extractor, skills)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	evaluateHandler := handlers.NewEvaluateHandler(evaluator)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Screener API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoint
	app.Post("/evaluate", evaluateHandler.HandleEvaluate)

	// Static SPA assets with index fallback for client-side routes
	app.Static("/", cfg.Static.Dir)
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return fiber.ErrNotFound
		}
		return c.SendFile(filepath.Join(cfg.Static.Dir, "index.html"))
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
