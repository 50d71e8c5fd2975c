package app

import (
	"log"
	"strings"

	"partsstore/internal/handlers"
	"partsstore/internal/middleware"
	"partsstore/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Dependencies are the services and settings the HTTP layer is built from.
type Dependencies struct {
	OrderService   *services.OrderService
	ProductService *services.ProductService
	AllowedOrigins []string
	StoreName      string
	// Quiet disables the access log.
	Quiet bool
}

// New builds the Fiber app with middleware and routes registered.
func New(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "partsstore",
		DisableStartupMessage: deps.Quiet,
	})

	// --- Middleware ---
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("Panic serving %s %s: %v", c.Method(), c.Path(), e)
		},
	}))
	if !deps.Quiet {
		app.Use(logger.New())
	}
	// The guard runs first so disallowed origins never reach CORS or a handler.
	app.Use(middleware.OriginGuard(deps.AllowedOrigins))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(deps.AllowedOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type",
	}))

	// --- Routes ---
	app.Get("/", handlers.HandleLiveness(deps.StoreName))
	handlers.NewOrderHandler(deps.OrderService).RegisterRoutes(app)
	handlers.NewProductHandler(deps.ProductService).RegisterRoutes(app.Group("/api"))

	return app
}
