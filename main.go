package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"partsstore/internal/app"
	"partsstore/internal/config"
	"partsstore/internal/repositories"
	"partsstore/internal/services"
	"partsstore/pkg/database"
	"partsstore/pkg/mailer"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Stores ---
	productRepo, orderRepo, closeStore, err := openStores(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s store: %v", cfg.StoreDriver, err)
	}
	defer closeStore()

	if !cfg.OrderPersistence {
		log.Println("Order persistence disabled; orders are only emailed")
		orderRepo = nil
	}

	// --- Mail relay ---
	mailClient, err := mailer.NewClient(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.User,
		Password: cfg.Mail.Password,
		Timeout:  cfg.Mail.Timeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize mail client: %v", err)
	}

	// --- Services ---
	formatter := services.NewNotificationFormatter(cfg.ShopName, cfg.Currency)
	dispatcher := services.NewNotificationDispatcher(mailClient, services.DispatcherConfig{
		ShopName:      cfg.ShopName,
		SenderAddress: cfg.Mail.User,
		AdminAddress:  cfg.Mail.AdminEmail,
		FailFast:      cfg.Mail.FailFast,
	})
	orderService := services.NewOrderService(orderRepo, formatter, dispatcher)
	productService := services.NewProductService(productRepo)

	fiberApp := app.New(app.Dependencies{
		OrderService:   orderService,
		ProductService: productService,
		AllowedOrigins: cfg.AllowedOrigins,
		StoreName:      cfg.StoreDriver,
	})

	// --- Start HTTP Server ---
	addr := ":" + cfg.Port
	log.Printf("Starting server on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := fiberApp.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := fiberApp.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openStores connects the configured backend and returns its repositories and a close func.
func openStores(cfg *config.Config) (repositories.ProductRepository, repositories.OrderRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := database.ConnectMongo(context.Background(), cfg.MongoURI)
		if err != nil {
			return nil, nil, nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting MongoDB: %v", err)
			}
		}
		return repositories.NewMongoProductRepository(db.Collection(repositories.ProductCollection)),
			repositories.NewMongoOrderRepository(db.Collection(repositories.OrderCollection)),
			closeFn, nil

	case config.StorePostgres, config.StoreSQLite:
		db, err := database.OpenGORM(cfg.StoreDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.Close()
			}
			if err != nil {
				log.Printf("Error closing database: %v", err)
			}
		}
		return repositories.NewGORMProductRepository(db), repositories.NewGORMOrderRepository(db), closeFn, nil

	case config.StoreMemory:
		log.Println("Using in-memory store; data is lost on restart")
		return repositories.NewMemoryProductRepository(), repositories.NewMemoryOrderRepository(), func() {}, nil
	}
	return nil, nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
