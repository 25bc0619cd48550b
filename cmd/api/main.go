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

	"github.com/chei-t/spice.com/internal/api"
	"github.com/chei-t/spice.com/internal/auth"
	"github.com/chei-t/spice.com/internal/cart"
	"github.com/chei-t/spice.com/internal/catalog"
	"github.com/chei-t/spice.com/internal/message"
	"github.com/chei-t/spice.com/internal/notify"
	"github.com/chei-t/spice.com/internal/order"
	"github.com/chei-t/spice.com/internal/payment"
	"github.com/chei-t/spice.com/internal/settings"
	"github.com/chei-t/spice.com/internal/storage"
	"github.com/chei-t/spice.com/internal/user"
	"github.com/chei-t/spice.com/internal/wishlist"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	MongoMaxPool    uint64
	MongoMinPool    uint64
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    []string
	OrderTopic      string
	JWTSecret       string
	TokenTTL        time.Duration
	AdminEmails     []string
	SendGridAPIKey  string
	MailFromName    string
	MailFromAddr    string
	GatewayURL      string
	GatewayAPIKey   string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "spicedb"),
		MongoMaxPool:    getEnvUint("MONGO_MAX_POOL_SIZE", 100),
		MongoMinPool:    getEnvUint("MONGO_MIN_POOL_SIZE", 10),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
		OrderTopic:      getEnv("KAFKA_ORDER_TOPIC", "order-events"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:        7 * 24 * time.Hour,
		AdminEmails:     splitList(getEnv("ADMIN_EMAILS", "")),
		SendGridAPIKey:  getEnv("SENDGRID_API_KEY", ""),
		MailFromName:    getEnv("MAIL_FROM_NAME", "Spice & Herbs"),
		MailFromAddr:    getEnv("MAIL_FROM_ADDR", "noreply@spice.example.com"),
		GatewayURL:      getEnv("PAYMENT_GATEWAY_URL", "https://api.stripe.com"),
		GatewayAPIKey:   getEnv("PAYMENT_GATEWAY_API_KEY", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseUint(value, 10, 64); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// Set up MongoDB connection
	mongoDB, err := storage.Connect(ctx, cfg.MongoURI, cfg.MongoDBName, storage.Options{
		MaxPoolSize: cfg.MongoMaxPool,
		MinPoolSize: cfg.MongoMinPool,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	// Repositories
	productRepo := catalog.NewMongoRepository(mongoDB)
	cartRepo := cart.NewMongoRepository(mongoDB)
	wishlistRepo := wishlist.NewMongoRepository(mongoDB)
	userRepo := user.NewMongoRepository(mongoDB)
	orderRepo := order.NewMongoRepository(mongoDB)
	messageRepo := message.NewMongoRepository(mongoDB)
	settingsRepo := settings.NewMongoRepository(mongoDB)

	type indexer interface {
		CreateIndexes(ctx context.Context) error
	}
	for _, repo := range []interface{}{productRepo, cartRepo, wishlistRepo, userRepo, orderRepo} {
		if ix, ok := repo.(indexer); ok {
			if err := ix.CreateIndexes(ctx); err != nil {
				log.Fatalf("Failed to create indexes: %v", err)
			}
		}
	}

	var mailer notify.Sender = notify.NopSender{}
	if cfg.SendGridAPIKey != "" {
		mailer = notify.NewSendGridSender(cfg.SendGridAPIKey, cfg.MailFromName, cfg.MailFromAddr)
	}

	// Services
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	productService := catalog.NewService(productRepo)
	cartCache := cart.NewRedisCache(redisClient)
	cartService := cart.NewCartService(cartRepo, cartCache, productService)
	wishlistService := wishlist.NewWishlistService(wishlistRepo, productService)
	userService := user.NewService(userRepo, tokens, mailer, cfg.AdminEmails)
	orderService := order.NewService(orderRepo)
	messageService := message.NewService(messageRepo, mailer)
	settingsService := settings.NewService(settingsRepo)
	gateway := payment.NewClient(cfg.GatewayURL, cfg.GatewayAPIKey)

	// Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	poller := order.NewOutboxPoller(orderRepo, cfg.OrderTopic, cfg.KafkaBrokers...)
	go poller.Run(workerCtx)
	defer poller.Close()

	consumer := cart.NewConsumer(cartRepo, cartCache, cfg.OrderTopic, cfg.KafkaBrokers...)
	go consumer.Run(workerCtx)
	defer consumer.Close()

	handlers := api.Handlers{
		Users:    api.NewUserHandler(userService),
		Products: api.NewProductHandler(productService),
		Cart:     api.NewCartHandler(cartService),
		Wishlist: api.NewWishlistHandler(wishlistService),
		Orders:   api.NewOrderHandler(orderService),
		Messages: api.NewMessageHandler(messageService),
		Settings: api.NewSettingsHandler(settingsService, gateway),
		Admin:    api.NewAdminHandler(userService),
	}

	router := api.NewRouter(handlers, tokens, userRepo, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront-api"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront API starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
