package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agalyaece/e-commerce-website/internal/config"
	"github.com/agalyaece/e-commerce-website/internal/db"
	"github.com/agalyaece/e-commerce-website/internal/events"
	"github.com/agalyaece/e-commerce-website/internal/handlers"
	"github.com/agalyaece/e-commerce-website/internal/invoice"
	"github.com/agalyaece/e-commerce-website/internal/logging"
	"github.com/agalyaece/e-commerce-website/internal/repository"
	"github.com/agalyaece/e-commerce-website/internal/server"
	"github.com/agalyaece/e-commerce-website/internal/service"
	"github.com/agalyaece/e-commerce-website/internal/session"
)

func main() {
	cfg := config.Load()

	logging.Init("storefront", cfg.LogFile)
	logger := logging.NewLogger("main")

	logging.Infof("Starting storefront on port %d", cfg.Server.Port)

	conn, err := db.Open(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", logging.Fields{"error": err.Error()})
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		logger.Fatal("Failed to run migrations", logging.Fields{"error": err.Error()})
	}

	productRepo := repository.NewPostgresProductRepository(conn)
	taxonomyRepo := repository.NewPostgresTaxonomyRepository(conn)
	accountRepo := repository.NewPostgresAccountRepository(conn)
	orderRepo := repository.NewPostgresOrderRepository(conn)

	var productCache repository.ProductCache
	if cfg.Features.EnableProductCaching {
		productCache = repository.NewRedisProductCache(cfg.Redis)
	}

	sessions := session.NewRedisStore(cfg.Redis, cfg.Session.TTL)

	var publisher events.Publisher
	if cfg.Features.EnableOrderEvents {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	catalogService := service.NewCatalogService(
		productRepo,
		taxonomyRepo,
		productCache,
		cfg.Features.EnableProductCaching,
	)
	accountService := service.NewAccountService(accountRepo)
	cartService := service.NewCartService(
		sessions,
		catalogService,
		orderRepo,
		invoice.UUIDGenerator{},
		publisher,
	)

	h := handlers.NewHandlers(cartService, catalogService, accountService, orderRepo, sessions)

	srv := server.New(h, cfg)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", logging.Fields{
			"port":                   cfg.Server.Port,
			"enable_order_events":    cfg.Features.EnableOrderEvents,
			"enable_product_caching": cfg.Features.EnableProductCaching,
		})
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Returning instead of exiting lets the deferred connection and
	// publisher closes run.
	select {
	case err := <-serverErr:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", logging.Fields{"error": err.Error()})
		}
		return
	case <-quit:
	}

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logging.Fields{"error": err.Error()})
	}

	logger.Info("Server exited", nil)
}
