package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/parpy69/pos-backend/internal/customer"
	customerdomain "github.com/parpy69/pos-backend/internal/customer/domain"
	"github.com/parpy69/pos-backend/internal/product"
	productdomain "github.com/parpy69/pos-backend/internal/product/domain"
	"github.com/parpy69/pos-backend/internal/sale"
	saledomain "github.com/parpy69/pos-backend/internal/sale/domain"
	salecommand "github.com/parpy69/pos-backend/internal/sale/usecase/command"
	"github.com/parpy69/pos-backend/internal/settings"
	settingsdomain "github.com/parpy69/pos-backend/internal/settings/domain"
	"github.com/parpy69/pos-backend/internal/supplier"
	supplierdomain "github.com/parpy69/pos-backend/internal/supplier/domain"
	"github.com/parpy69/pos-backend/kafka"
	"github.com/parpy69/pos-backend/pkg/database"
	"github.com/parpy69/pos-backend/pkg/logger"
	"github.com/parpy69/pos-backend/pkg/tracing"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "pos-backend")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting POS backend")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "posdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&productdomain.Product{},
		&customerdomain.Customer{},
		&settingsdomain.Settings{},
		&saledomain.Sale{},
		&supplierdomain.Supplier{},
		&supplierdomain.SupplierProduct{},
		&supplierdomain.PurchaseOrder{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Initialize Redis for the settings cache
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", redisAddr).
			Msg("Failed to connect to Redis - settings caching will be disabled")
		redisClient = nil
	}

	// Initialize Kafka publisher for settlement events
	var publisher salecommand.EventPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaPublisher, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("brokers", brokers).
				Msg("Failed to connect to Kafka - settlement events will not be published")
		} else {
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
		}
	}

	// Shared repositories for cross-module dependencies
	productRepo := product.ProvideProductRepository(db)
	customerRepo := customer.ProvideCustomerRepository(db)
	settingsRepo := settings.ProvideSettingsRepository(db, redisClient)

	policy := salecommand.MissingCustomerPolicy(getEnv("MISSING_CUSTOMER_POLICY", "ignore"))

	// Initialize handlers with Wire DI
	productHandler, err := product.InitializeHTTPHandler(db, settingsRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize product handler")
	}
	customerHandler, err := customer.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize customer handler")
	}
	settingsHandler, err := settings.InitializeHTTPHandler(db, redisClient)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize settings handler")
	}
	saleHandler, err := sale.InitializeHTTPHandler(db, productRepo, customerRepo, settingsRepo, policy, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize sale handler")
	}
	supplierHandler, err := supplier.InitializeHTTPHandler(db, productRepo)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize supplier handler")
	}

	// Setup router
	router := mux.NewRouter()
	productHandler.RegisterRoutes(router)
	customerHandler.RegisterRoutes(router)
	settingsHandler.RegisterRoutes(router)
	saleHandler.RegisterRoutes(router)
	supplierHandler.RegisterRoutes(router)

	// Health check endpoint
	productHandler.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(router, httpPort, serviceName)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(router *mux.Router, port, serviceName string) {
	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Trace every request
	handler := otelhttp.NewHandler(c.Handler(router), serviceName)

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
