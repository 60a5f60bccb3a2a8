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
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/archive"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/handlers"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/jwt"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/logger"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/middlewares"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/repositories"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/services"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/internal/web"
	"github.com/Hari-reddy33/Drive-Drowsiness-System/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Drive Drowsiness System API
// @version 1.0.0
// @description Web portal for driver drowsiness event collection and review
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		capturesDir, reportPageSize,
		jwtSecretKey, jwtExpSecond,
		adminUsername, adminPassword,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		capturesDir, reportPageSize,
		jwtSecretKey, jwtExpSecond,
		adminUsername, adminPassword,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, archive, logging, JWT and admin
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	capturesDir string, reportPageSize int,
	jwtSecretKey string, jwtExpSecond int,
	adminUsername, adminPassword string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config; an empty host disables the report cache.
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("REPORT_CACHE_TTL_SECOND", "30")); err != nil {
		return
	}

	// Kafka config; empty brokers disable event publishing.
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "drowsiness-events")

	// Snapshot archive and admin report config
	capturesDir = getEnv("CAPTURES_DIR", "captures")
	if reportPageSize, err = strconv.Atoi(getEnv("REPORT_PAGE_SIZE", "500")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Administrator credentials
	adminUsername = getEnv("ADMIN_USERNAME", "admin")
	adminPassword = getEnv("ADMIN_PASSWORD", "admin123")

	return
}

// run initializes the logger, database, Redis, Kafka, snapshot archive and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, cacheTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	capturesDir string, reportPageSize int,
	jwtSecretKey string, jwtExpSecond int,
	adminUsername, adminPassword string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply schema migrations
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db.DB, "."); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Connect to Redis when configured
	var reportCache services.ReportCache
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		reportCache = repositories.NewReportCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)
	}

	// Kafka writer when configured
	var publisher services.EventPublisher
	if kafkaBrokers != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		publisher = writer
	}

	// Snapshot archive
	files, err := archive.New(capturesDir)
	if err != nil {
		logger.Log.Fatal("failed to prepare captures directory:", err)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db)
	eventWriteRepo := repositories.NewEventWriteRepository(db)
	eventReadRepo := repositories.NewEventReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(accountReadRepo, accountWriteRepo, jwtSvc, adminUsername, adminPassword)
	ingestService := services.NewIngestService(eventWriteRepo, files, publisher)
	reportService := services.NewReportService(eventReadRepo, accountReadRepo, reportCache, reportPageSize)

	// Initialize handlers
	landingHandler := handlers.NewLandingHandler()
	loginPageHandler := handlers.NewLoginPageHandler()
	loginHandler := handlers.NewLoginHandler(authService)
	registerHandler := handlers.NewRegisterHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler()
	logDrowsinessHandler := handlers.NewLogDrowsinessHandler(ingestService)
	adminDashboardHandler := handlers.NewAdminDashboardHandler(reportService)
	logoutHandler := handlers.NewLogoutHandler()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/", landingHandler)
	r.Get("/login", loginPageHandler)
	r.Post("/login", loginHandler)
	r.With(middlewares.TxMiddleware(db)).Post("/register", registerHandler)
	r.Get("/logout", logoutHandler)
	r.Handle("/static/*", web.StaticHandler())

	// Driver routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc, jwt.RoleDriver, middlewares.RedirectToLogin))
		r.Get("/dashboard", dashboardHandler)
	})
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc, jwt.RoleDriver, middlewares.JSONUnauthorized))
		r.Post("/log_drowsiness", logDrowsinessHandler)
	})

	// Administrator routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc, jwt.RoleAdmin, middlewares.RedirectToLogin))
		r.Get("/admin-dashboard", adminDashboardHandler)
		r.Handle("/captures/*", http.StripPrefix("/captures/", http.FileServer(http.Dir(files.Dir()))))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
