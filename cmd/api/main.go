package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"click-counter-service/internal/config"
	"click-counter-service/migrations"
	"click-counter-service/web"

	queryHttp "click-counter-service/internal/query/adapters/http/fiber"
	queryRepoPg "click-counter-service/internal/query/adapters/postgres"
	queryUsecase "click-counter-service/internal/query/core/usecase"

	recordHttp "click-counter-service/internal/record/adapters/http/fiber"
	recordRepoPg "click-counter-service/internal/record/adapters/postgres"
	recordUsecase "click-counter-service/internal/record/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "click-counter-service/docs"
)

// @title Click Counter API
// @version 1.0
// @description Records button clicks and serves the running total to a polling client.
// @BasePath /
func main() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// DB connection: one pool for the whole process, opened before the
	// listener starts. If the store is unreachable here, we do not serve.
	db, err := sql.Open("postgres", cfg.DB.DSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Schema
	migCtx, migCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrations.Up(migCtx, db); err != nil {
		migCancel()
		log.Fatalf("failed to migrate: %v", err)
	}
	migCancel()

	// Adapter-level DB wrappers
	recordDB := recordRepoPg.NewSQLDB(db)
	queryDB := queryRepoPg.NewSQLDB(db)

	// Repositories
	clickRecorder := recordRepoPg.NewClickRepository(recordDB)
	clickReader := queryRepoPg.NewClickRepository(queryDB)

	// Usecases
	recordClickUC := recordUsecase.NewRecordClickUseCase(clickRecorder)
	listClicksUC := queryUsecase.NewListClicksUseCase(clickReader)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(recover.New())

	// write side
	clickHandler := recordHttp.NewClickHandler(recordClickUC)
	app.Post("/clicked", clickHandler.RecordClick)

	// read side
	clicksHandler := queryHttp.NewClicksHandler(listClicksUC)
	app.Get("/clicks", clicksHandler.ListClicks)

	// store liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			log.Printf("health check: %v", err)
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Polling client assets, registered last so API routes win.
	app.Use("/", filesystem.New(filesystem.Config{
		Root:       http.FS(web.StaticFS),
		PathPrefix: "static",
		Index:      "index.html",
	}))

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
