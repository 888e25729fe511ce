package router

import (
	"context"
	"fmt"
	"net/http"

	designersvc "designer-shortlist/internal/application/designers"
	favsvc "designer-shortlist/internal/application/favorites"
	"designer-shortlist/internal/config"
	"designer-shortlist/internal/infrastructure/database"
	designershandler "designer-shortlist/internal/interfaces/handlers/designers"
	healthhandler "designer-shortlist/internal/interfaces/handlers/health"
	shortlisthandler "designer-shortlist/internal/interfaces/handlers/shortlist"
	"designer-shortlist/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp opens the database (seeding it when empty), connects Redis when REDIS_URL is
// set, and mounts every route. The caller owns the returned DB and Redis client.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	db, err := database.Setup(context.Background(), cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		return nil, nil, nil, err
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb = redis.NewClient(opts)
	}

	return Mount(db, rdb, cfg), db, rdb, nil
}

// Mount builds the Fiber app on an already opened database. rdb may be nil.
func Mount(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(recover.New())
	app.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}))
	app.Use(middleware.Tracing())
	if rdb != nil {
		app.Use(middleware.HealthMarker(rdb))
	}
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		DB:             &gormDBPinger{db: db},
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/", hh.Status)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/reset", hh.Reset)
	app.Get("/health/errors", hh.Errors)

	api := app.Group("/api")

	dh := &designershandler.Handlers{Service: &designersvc.Service{DB: db}}
	api.Get("/designers", dh.List)
	api.Get("/designers/:id<int>", dh.Get)
	api.Post("/designers/search", dh.Search)
	api.Get("/stats", dh.Stats)
	api.Get("/tags", dh.Tags)
	api.Get("/locations", dh.Locations)

	sh := &shortlisthandler.Handlers{Service: &favsvc.Service{DB: db}}
	api.Post("/shortlist", sh.Manage)
	api.Get("/shortlist/:user_id", sh.List)

	return app
}

// Handler exposes the app as a net/http handler.
func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
