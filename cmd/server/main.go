package main

import (
	"database/sql"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"route-consolidation-service/internal/adapters/repositories"
	"route-consolidation-service/internal/adapters/source"
	"route-consolidation-service/internal/api"
	"route-consolidation-service/internal/config"
	"route-consolidation-service/internal/platform/db"
	"route-consolidation-service/internal/ports"
	"route-consolidation-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, order-source client,
// Redis cache) behind ports and starts the HTTP server.
func main() {
	// No .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	log := newLogger()
	defer func() { _ = log.Sync() }()

	conn, driver, err := openDB(log)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	// Initialize schema and seed demo delivery records on startup for
	// local runs.
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatal("init schema", zap.Error(err))
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/deliveries.json")
	if _, statErr := os.Stat(seedPath); statErr == nil {
		if err := repositories.SeedFromJSON(conn, driver, seedPath); err != nil {
			log.Fatal("seed deliveries", zap.Error(err))
		}
	} else {
		log.Info("no seed file found, skipping seed", zap.String("path", seedPath))
	}

	deliverySource := buildSource(conn, driver, log)

	repo := repositories.NewSQLRouteRepository(conn, driver)
	agg := services.NewAggregator(deliverySource, config.GetInt("BATCH_CAP", services.DefaultBatchCap), log)
	cons := services.NewConsolidator(repo, services.ConsolidatorConfig{
		StartHour:      config.GetInt("ROUTE_START_HOUR", services.DefaultRouteStartHour),
		EndHour:        config.GetInt("ROUTE_END_HOUR", services.DefaultRouteEndHour),
		PersistTimeout: config.GetDuration("PERSIST_TIMEOUT", 10*time.Second),
	}, log)

	pageSize := config.GetInt("PAGE_SIZE", services.DefaultPageSize)
	router := api.NewRouter(agg, cons, repo, pageSize, log)

	port := config.Get("PORT", "8080")
	log.Info("server listening", zap.String("addr", ":"+port))

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

func newLogger() *zap.Logger {
	if config.Get("LOG_LEVEL", "") == "debug" {
		log, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return log
	}

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return log
}

// openDB prefers Postgres when DATABASE_URL is set, falling back to a
// local SQLite file.
func openDB(log *zap.Logger) (*sql.DB, string, error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		conn, err := db.OpenPostgres(databaseURL)
		return conn, "pgx", err
	}

	path := config.Get("DB_PATH", "data/app.db")
	log.Info("using local sqlite database", zap.String("path", path))
	conn, err := db.OpenSQLite(path)
	return conn, "sqlite", err
}

// buildSource selects the order-source adapter: the REST client when
// SOURCE_URL is set, otherwise the seeded local table. A Redis cache
// wraps the source when REDIS_ADDR is configured.
func buildSource(conn *sql.DB, driver string, log *zap.Logger) ports.DeliverySource {
	var src ports.DeliverySource
	if sourceURL := strings.TrimSpace(os.Getenv("SOURCE_URL")); sourceURL != "" {
		src = source.NewHTTPDeliverySource(sourceURL, config.GetDuration("SOURCE_TIMEOUT", 15*time.Second), log)
	} else {
		src = source.NewSQLDeliverySource(conn, driver)
	}

	if redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		src = source.NewCachedDeliverySource(src, rdb, config.GetDuration("CACHE_TTL", time.Hour), log)
	}

	return src
}
