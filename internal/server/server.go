package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"supplychain-core/internal/config"
	custommiddleware "supplychain-core/internal/middleware"
	"supplychain-core/internal/notifier"
	"supplychain-core/internal/repository"
	"supplychain-core/internal/service"
	"supplychain-core/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config      *config.Config
	logger      *zap.Logger
	db          *sql.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) *Server {
	isDevelopment := cfg.Server.Env != "production"

	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, isDevelopment))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Rate limiting backed by Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
		RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
		Window:            time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		KeyPrefix:         "ratelimit",
	}, logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize repositories
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewPurchaseOrderRepository(db)

	// Pick the supplier notifier
	var supplierNotifier notifier.SupplierNotifier
	if cfg.Notifier.Mode == "smtp" {
		supplierNotifier = notifier.NewSMTPNotifier(cfg.Notifier.SMTPHost, cfg.Notifier.SMTPPort, cfg.Notifier.From)
	} else {
		supplierNotifier = notifier.NewLogNotifier(logger)
	}

	// Initialize services
	catalogService := service.NewCatalogService(supplierRepo, productRepo)
	inventoryService := service.NewInventoryService(productRepo)
	orderService := service.NewOrderService(
		orderRepo,
		productRepo,
		supplierNotifier,
		time.Duration(cfg.Notifier.DispatchTimeout)*time.Second,
	)

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(catalogService, inventoryService, logger)
	orderHandler := transport.NewOrderHandler(orderService, logger)

	// Register routes
	catalogHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:      cfg,
		logger:      logger,
		db:          db,
		redisClient: redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	// Close database connection
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
