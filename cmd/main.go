package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/kemet-travel/kemet-api/internal/handlers"
	"github.com/kemet-travel/kemet-api/internal/jwt"
	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/mail"
	"github.com/kemet-travel/kemet-api/internal/middlewares"
	"github.com/kemet-travel/kemet-api/internal/models"
	"github.com/kemet-travel/kemet-api/internal/otp"
	"github.com/kemet-travel/kemet-api/internal/password"
	"github.com/kemet-travel/kemet-api/internal/repositories"
	"github.com/kemet-travel/kemet-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/kemet-travel/kemet-api/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all application settings loaded from the environment.
type config struct {
	// Application
	AppHost  string
	AppPort  string
	LogLevel string

	// PostgreSQL
	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	// Redis
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	// SMTP
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// Kafka
	KafkaBrokers string
	KafkaTopic   string

	// Auth
	Pepper             string
	JWTSecretKey       string
	JWTIssuer          string
	JWTAudience        string
	AccessExpMinute    int
	RefreshExpDay      int
	DashboardTTLSecond int
}

// @title Kemet travel API
// @version 1.0.0
// @description Backend for the Kemet travel planner: accounts, trips, destinations and the admin dashboard
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "kemet")
	if cfg.PgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	// SMTP config
	cfg.SMTPHost = getEnv("SMTP_HOST", "localhost")
	cfg.SMTPPort = getEnv("SMTP_PORT", "587")
	cfg.SMTPUser = getEnv("SMTP_USER", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "no-reply@kemet.travel")

	// Kafka config. Empty brokers disable publishing.
	cfg.KafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "kemet.analytics")

	// Auth config
	cfg.Pepper = getEnv("PASSWORD_PEPPER", "")
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "kemet-api")
	cfg.JWTAudience = getEnv("JWT_AUDIENCE", "kemet-clients")
	if cfg.AccessExpMinute, err = strconv.Atoi(getEnv("JWT_ACCESS_EXP_MINUTE", "15")); err != nil {
		return
	}
	if cfg.RefreshExpDay, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_DAY", "7")); err != nil {
		return
	}
	if cfg.DashboardTTLSecond, err = strconv.Atoi(getEnv("DASHBOARD_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PgHost, cfg.PgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for analytics events, optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Token and credential tooling
	tokener := jwt.New(cfg.JWTSecretKey, cfg.JWTIssuer, cfg.JWTAudience,
		time.Duration(cfg.AccessExpMinute)*time.Minute)
	hasher := password.New(cfg.Pepper)
	mailer := mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	tripReadRepo := repositories.NewTripReadRepository(db)
	tripWriteRepo := repositories.NewTripWriteRepository(db, middlewares.GetTxFromContext)
	destReadRepo := repositories.NewDestinationReadRepository(db)
	destWriteRepo := repositories.NewDestinationWriteRepository(db)
	analyticsRepo := repositories.NewAnalyticsWriteRepository(db)
	dashboardRepo := repositories.NewDashboardReadRepository(db)
	dashboardCache := repositories.NewDashboardCacheRepository(rdb,
		time.Duration(cfg.DashboardTTLSecond)*time.Second)

	// Initialize services
	tokenService := services.NewTokenService(tokener, userReadRepo, userWriteRepo,
		time.Duration(cfg.RefreshExpDay)*24*time.Hour)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hasher,
		otp.Generator{}, mailer, tokenService)
	analyticsService := services.NewAnalyticsService(analyticsRepo, kafkaWriter)
	tripService := services.NewTripService(tripReadRepo, tripWriteRepo, analyticsService)
	tripPolicy := services.NewTripPolicy(tripReadRepo)
	destinationService := services.NewDestinationService(destReadRepo, destWriteRepo, analyticsService)
	dashboardService := services.NewDashboardService(dashboardRepo, dashboardCache)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	authMiddleware := middlewares.AuthMiddleware(tokener)
	optionalAuth := middlewares.OptionalAuthMiddleware(tokener)
	adminOnly := middlewares.RequireRoles(models.RoleAdmin)

	// Public auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(authService, tokenService))
		r.Post("/login", handlers.NewLoginHandler(authService, tokenService))
		r.Post("/refresh", handlers.NewRefreshHandler(authService))
		r.Post("/logout", handlers.NewLogoutHandler(authService))
		r.Post("/verify-email", handlers.NewVerifyEmailHandler(authService))
		r.Post("/resend-otp", handlers.NewResendOtpHandler(authService))
		r.Post("/forgot-password", handlers.NewForgotPasswordHandler(authService))
		r.Post("/reset-password", handlers.NewResetPasswordHandler(authService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/change-password", handlers.NewChangePasswordHandler(authService))
		})
	})

	// Trips: catalog reads are public, authoring requires a session
	r.Route("/trips", func(r chi.Router) {
		r.Get("/", handlers.NewListTripsHandler(tripService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/my", handlers.NewMyTripsHandler(tripService))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))
				r.Post("/", handlers.NewCreateTripHandler(tripService))
			})

			r.Put("/{id}", handlers.NewUpdateTripHandler(tripService, tripPolicy))
			r.Delete("/{id}", handlers.NewDeleteTripHandler(tripService, tripPolicy))

			r.Post("/{id}/days", handlers.NewAddDayHandler(tripService, tripPolicy))
			r.Put("/{id}/days/{dayID}", handlers.NewUpdateDayHandler(tripService, tripPolicy))
			r.Delete("/{id}/days/{dayID}", handlers.NewRemoveDayHandler(tripService, tripPolicy))

			r.Post("/{id}/days/{dayID}/activities", handlers.NewAddActivityHandler(tripService, tripPolicy))
			r.Put("/{id}/days/{dayID}/activities/{activityID}", handlers.NewUpdateActivityHandler(tripService, tripPolicy))
			r.Delete("/{id}/days/{dayID}/activities/{activityID}", handlers.NewRemoveActivityHandler(tripService, tripPolicy))
		})

		r.Get("/{id}", handlers.NewGetTripHandler(tripService))
	})

	// Destinations: reads are public, writes are admin-only
	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", handlers.NewListDestinationsHandler(destinationService))
		r.With(optionalAuth).Get("/{id}", handlers.NewGetDestinationHandler(destinationService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware, adminOnly)
			r.Post("/", handlers.NewCreateDestinationHandler(destinationService))
			r.Put("/{id}", handlers.NewUpdateDestinationHandler(destinationService))
			r.Delete("/{id}", handlers.NewDeleteDestinationHandler(destinationService))
		})
	})

	// Favorites
	r.Route("/favorites", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", handlers.NewListFavoritesHandler(destinationService))
		r.Post("/{id}", handlers.NewAddFavoriteHandler(destinationService))
		r.Delete("/{id}", handlers.NewRemoveFavoriteHandler(destinationService))
	})

	// Usage events: anonymous callers allowed, authenticated ones attributed
	r.With(optionalAuth).Post("/dashboard/track", handlers.NewTrackEventHandler(analyticsService))

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMiddleware, adminOnly)
		r.Get("/users", handlers.NewListUsersHandler(authService))
		r.Put("/users/{id}/role", handlers.NewUpdateUserRoleHandler(authService))
		r.Get("/dashboard", handlers.NewDashboardHandler(dashboardService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
