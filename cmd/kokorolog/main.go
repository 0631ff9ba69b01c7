package main

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/kokorolog/kokorolog/internal/adapters/ai/gemini"
	portsrepo "github.com/kokorolog/kokorolog/internal/core/ports/repositories"
	"github.com/kokorolog/kokorolog/internal/core/services"
	"github.com/kokorolog/kokorolog/internal/handlers"
	"github.com/kokorolog/kokorolog/internal/metrics"
	"github.com/kokorolog/kokorolog/internal/middleware"
	"github.com/kokorolog/kokorolog/internal/platform/config"
	pgsqlrepo "github.com/kokorolog/kokorolog/internal/repositories/database/pgsql"
	sqliterepo "github.com/kokorolog/kokorolog/internal/repositories/database/sqlite"
	"github.com/kokorolog/kokorolog/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Kokorolog Diary API
// @version 1.0
// @description Personal diary backend with AI-generated commentary.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	entryRepo, cleanup, err := newEntryRepository(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize entry store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	generator, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Error("Failed to initialize gemini client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{EntryRepo: entryRepo}, generator, collector)

	rate, err := limiter.NewRateFromFormatted(cfg.AIRateLimit)
	if err != nil {
		logger.Error("Invalid AI_RATE_LIMIT", slog.String("error", err.Error()))
		os.Exit(1)
	}
	aiLimiter := limiter.New(memorystore.NewStore(), rate)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the browser client)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, aiLimiter, registry)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newEntryRepository selects the entry store: Postgres when PGSQL_URL is set,
// the embedded sqlite file otherwise. The returned cleanup closes whatever
// was opened.
func newEntryRepository(cfg *config.Config, logger *slog.Logger) (portsrepo.EntryRepositoryFacade, func(), error) {
	if cfg.DatabaseURL == "" {
		store, err := sqliterepo.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using embedded sqlite store", slog.String("path", cfg.SQLitePath))
		return store, func() { closeQuietly(store, logger) }, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	return pgsqlrepo.NewEntryRepository(dbPool), dbPool.Close, nil
}

// runMigrations applies the SQL migrations over a temporary database/sql
// connection, using the pgx stdlib driver to stay compatible with the pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func closeQuietly(c io.Closer, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("Error closing entry store", slog.String("error", err.Error()))
	}
}
