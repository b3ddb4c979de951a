package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/balqees-dev/ecom-admin-backend/internal/admin"
	"github.com/balqees-dev/ecom-admin-backend/internal/category"
	"github.com/balqees-dev/ecom-admin-backend/internal/config"
	"github.com/balqees-dev/ecom-admin-backend/internal/customer"
	"github.com/balqees-dev/ecom-admin-backend/internal/dashboard"
	"github.com/balqees-dev/ecom-admin-backend/internal/database"
	"github.com/balqees-dev/ecom-admin-backend/internal/order"
	"github.com/balqees-dev/ecom-admin-backend/internal/product"
	"github.com/balqees-dev/ecom-admin-backend/internal/restaurant"
	"github.com/balqees-dev/ecom-admin-backend/internal/transaction"
)

func main() {
	_ = godotenv.Load()

	// monetary values go out as plain numbers (KWD, 3 fractional digits)
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	app := fiber.New()
	setupCORS(app)

	adminHandler := admin.NewHandler(admin.NewService(admin.NewPostgresRepository(db)))
	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))
	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db)))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboard.NewPostgresRepository(db)))
	customerHandler := customer.NewHandler(customer.NewService(customer.NewPostgresRepository(db)))
	transactionHandler := transaction.NewHandler(transaction.NewService(transaction.NewPostgresRepository(db)))
	restaurantHandler := restaurant.NewHandler(restaurant.NewService(restaurant.NewPostgresRepository(db)))

	// public surface: reads, order intake and the admin login
	adminHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	dashboardHandler.RegisterPublicRoutes(app)
	customerHandler.RegisterPublicRoutes(app)
	transactionHandler.RegisterPublicRoutes(app)
	restaurantHandler.RegisterPublicRoutes(app)

	// everything below requires an admin token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	categoryHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	restaurantHandler.RegisterProtectedRoutes(app)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}
