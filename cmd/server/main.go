package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/beyondgamer21/aura-elegance/internal/auth"
	"github.com/beyondgamer21/aura-elegance/internal/cache"
	"github.com/beyondgamer21/aura-elegance/internal/cart"
	"github.com/beyondgamer21/aura-elegance/internal/catalog"
	h "github.com/beyondgamer21/aura-elegance/internal/http"
	"github.com/beyondgamer21/aura-elegance/internal/notify"
	"github.com/beyondgamer21/aura-elegance/internal/repository"
	"github.com/beyondgamer21/aura-elegance/internal/service"
)

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	RedisAddr string

	OrdersBackend     string // "memory" or "postgres"
	PostgresHost      string
	PostgresPort      int
	PostgresUser      string
	PostgresPassword  string
	PostgresDB        string
	MigrationsDirPath string

	KafkaBrokers []string

	ResendAPIKey   string
	OperatorEmail  string
	FromEmail      string
	FromName       string
	WhatsAppNumber string
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,

		RedisAddr: getEnv("REDIS_ADDR", ""),

		OrdersBackend:     getEnv("ORDERS_BACKEND", "memory"),
		PostgresHost:      getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:      getEnvInt("POSTGRES_PORT", 5432),
		PostgresUser:      getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword:  getEnv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:        getEnv("POSTGRES_DB", "aura"),
		MigrationsDirPath: getEnv("MIGRATIONS_DIR", "./migrations"),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),

		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		OperatorEmail:  getEnv("OPERATOR_EMAIL", "operator@aura-elegance.example"),
		FromEmail:      getEnv("FROM_EMAIL", "onboarding@resend.dev"),
		FromName:       getEnv("FROM_NAME", "Aura Elegance"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "+1234567890"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func main() {
	cfg := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Product catalog, seeded once at startup
	products := catalog.NewMemoryStore(catalog.DefaultProducts())

	// Cart store with optional Redis read cache
	var cartCache cache.CartCache = cache.NoopCache{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
		cartCache = cache.NewRedisCache(redisClient)
		logger.Info("cart cache enabled", zap.String("redis_addr", cfg.RedisAddr))
	}
	cartSvc := cart.NewService(cart.NewMemoryStore(), cartCache, logger)

	// Order persistence backend
	var repo repository.OrderRepository
	switch cfg.OrdersBackend {
	case "postgres":
		creds := &repository.Credentials{
			Host:              cfg.PostgresHost,
			Port:              cfg.PostgresPort,
			User:              cfg.PostgresUser,
			Password:          cfg.PostgresPassword,
			DBName:            cfg.PostgresDB,
			MigrationsDirPath: cfg.MigrationsDirPath,
		}
		pgRepo, err := repository.NewPostgresRepository(creds)
		if err != nil {
			logger.Fatal("failed to connect to postgres", zap.Error(err))
		}
		if err := pgRepo.RunMigrations(creds); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		repo = pgRepo
		logger.Info("orders backend: postgres", zap.String("host", cfg.PostgresHost))
	default:
		repo = repository.NewMemoryRepository()
		logger.Info("orders backend: memory")
	}
	defer repo.Close()

	// Notification channels
	var emailSender notify.EmailSender
	if cfg.ResendAPIKey != "" {
		emailSender = notify.NewResendSender(cfg.ResendAPIKey)
	} else {
		logger.Warn("RESEND_API_KEY not set, order emails disabled")
	}

	var publisher notify.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := notify.NewKafkaPublisher(cfg.KafkaBrokers...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("order event publisher enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	dispatcher := notify.NewDispatcher(emailSender, publisher, logger, notify.Config{
		OperatorEmail:  cfg.OperatorEmail,
		FromEmail:      cfg.FromEmail,
		FromName:       cfg.FromName,
		WhatsAppNumber: cfg.WhatsAppNumber,
	})

	orderSvc := service.NewOrderService(repo, dispatcher, logger)
	authSvc := auth.NewService()

	router := h.NewRouter(
		h.NewProductsHandler(products),
		h.NewOrdersHandler(orderSvc, cartSvc, logger),
		h.NewCartHandler(cartSvc, logger),
		h.NewAuthHandler(authSvc),
		authSvc,
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
