package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/tastehaven/menu_backend/config"
	"github.com/tastehaven/menu_backend/controllers"
	"github.com/tastehaven/menu_backend/middleware"
	"github.com/tastehaven/menu_backend/repositories"
	"github.com/tastehaven/menu_backend/routes"
	"github.com/tastehaven/menu_backend/services"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// healthHandler reports liveness and verifies the database is actually
// reachable before claiming so.
func healthHandler(db pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(503, map[string]string{
				"status":   "unhealthy",
				"database": "unreachable",
			})
		}
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	// Connect to database
	pool := config.ConnectDB(cfg.DB)
	defer pool.Close()

	// Subcommands: `migrate` applies the schema, `seed` loads sample dishes.
	if len(os.Args) > 1 {
		ctx := context.Background()
		switch os.Args[1] {
		case "migrate":
			if err := applyMigrations(ctx, pool, true); err != nil {
				log.Fatal("migrate:", err)
			}
			return
		case "seed":
			if err := seedMenuItems(ctx, pool); err != nil {
				log.Fatal("seed:", err)
			}
			return
		}
	}

	// Optional auto-migration for fresh databases.
	if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); v == "1" || strings.EqualFold(v, "true") {
		if err := applyMigrations(context.Background(), pool, false); err != nil {
			log.Fatal("migrate:", err)
		}
	}

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.GlobalCORS())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"*"},
		AllowInlineJS:  false,
	}))

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Taste Haven menu backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", healthHandler(pool))

	// Initialize repositories and services
	menuRepo := repositories.NewMenuRepository(pool)
	menuService := services.NewMenuService(menuRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(cfg.Admin)
	menuController := controllers.NewMenuController(menuService)

	// Register routes
	routes.RegisterAuthRoutes(e, authController)
	routes.RegisterMenuRoutes(e, menuController)

	// Drop logged-out tokens from the blacklist after a week
	go middleware.CleanupBlacklist(7 * 24 * time.Hour)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
