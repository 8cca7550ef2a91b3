package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	calendarapp "stayboard/internal/app/handlers/calendar"
	dashboardapp "stayboard/internal/app/handlers/dashboard"
	financeapp "stayboard/internal/app/handlers/finance"
	reportsapp "stayboard/internal/app/handlers/reports"
	"stayboard/internal/app/middleware"
	"stayboard/internal/app/queries"
	"stayboard/internal/app/snapshot"
	"stayboard/internal/infra/broker/kafka"
	"stayboard/internal/infra/config"
	mongodb "stayboard/internal/infra/db/mongo"
	ginserver "stayboard/internal/infra/http/gin"
	"stayboard/internal/infra/obs"
	"stayboard/internal/infra/stats"
	"stayboard/internal/infra/storage/memory"
	"stayboard/internal/infra/storage/s3"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	source, err := buildSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage setup failed", "error", err)
		os.Exit(1)
	}

	holder := &snapshot.Holder{}
	refresher := snapshot.NewRefresher(source, holder, cfg.RefreshInterval, logger)
	refresher.Lookback = cfg.SnapshotLookback
	go refresher.Run(ctx)

	if len(cfg.KafkaBrokers) > 0 {
		consumer, err := kafka.NewBookingEventsConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, nil, refresher, logger)
		if err != nil {
			logger.Warn("kafka consumer unavailable, relying on timer refresh", "error", err)
		} else {
			go func() {
				defer consumer.Close()
				if err := consumer.Run(ctx, []string{cfg.BookingTopic}); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("booking events consumer stopped", "error", err)
				}
			}()
		}
	}

	queryBus := buildQueryBus(cfg, source, holder, logger)

	health := obs.HealthHandlers{Ready: func() error {
		if _, ok := holder.Current(); !ok {
			return errors.New("snapshot not populated yet")
		}
		return nil
	}}
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, health, ginserver.Handlers{
		Dashboard: ginserver.DashboardHandler{Queries: queryBus},
		Calendar:  ginserver.CalendarHandler{Queries: queryBus},
		Finance:   ginserver.FinanceHandler{Queries: queryBus},
		Reports:   ginserver.ReportsHandler{Queries: queryBus},
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func buildSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (snapshot.Source, error) {
	switch cfg.StorageMode {
	case config.StorageMongo:
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx); err != nil {
			return nil, err
		}
		return mongodb.NewStayRepository(client.DB), nil
	default:
		store := memory.NewStayStore()
		path := cfg.FixturesPath
		if path == "" {
			path = defaultStayFixturesPath()
		}
		if err := store.LoadFixtures(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Info("stay fixtures file not found, starting empty", "path", path)
			} else {
				logger.Warn("stay fixtures load failed", "error", err, "path", path)
			}
		} else {
			logger.Info("stay fixtures imported", "path", path)
		}
		return store, nil
	}
}

func buildQueryBus(cfg config.Config, source snapshot.Source, holder *snapshot.Holder, logger *slog.Logger) queries.Bus {
	bus := queries.NewInMemoryBus()

	queries.RegisterHandler(bus, dashboardapp.RevenueSeriesQuery{}.Key(), &dashboardapp.RevenueSeriesHandler{Source: source})
	queries.RegisterHandler(bus, dashboardapp.MonthlyTrendQuery{}.Key(), &dashboardapp.MonthlyTrendHandler{Source: source})

	statsHandler := &dashboardapp.StatsHandler{Holder: holder, Logger: logger}
	if cfg.StatsURL != "" {
		statsHandler.Fetcher = &stats.Client{
			Endpoint: cfg.StatsURL,
			Client:   &http.Client{Timeout: 5 * time.Second},
			Logger:   logger,
		}
	}
	queries.RegisterHandler(bus, dashboardapp.StatsQuery{}.Key(), statsHandler)

	queries.RegisterHandler(bus, calendarapp.MonthGridQuery{}.Key(), &calendarapp.MonthGridHandler{Source: source, Logger: logger})
	queries.RegisterHandler(bus, financeapp.BreakdownQuery{}.Key(), &financeapp.BreakdownHandler{})

	exportHandler := &reportsapp.ExportMonthHandler{Source: source, Logger: logger}
	if cfg.S3Endpoint != "" {
		uploader, err := s3.NewClient(s3.Config{
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			Bucket:         cfg.S3Bucket,
			UseSSL:         cfg.S3UseSSL,
		}, logger)
		if err != nil {
			logger.Warn("report uploader unavailable", "error", err)
		} else {
			exportHandler.Uploader = uploader
		}
	}
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			logger.Warn("report event producer unavailable", "error", err)
		} else {
			exportHandler.Publisher = producer
			exportHandler.Topic = cfg.ReportTopic
		}
	}
	queries.RegisterHandler(bus, reportsapp.ExportMonthQuery{}.Key(), exportHandler)

	return middleware.ChainQueries(bus,
		middleware.Logging(logger),
		middleware.Timeout(10*time.Second),
	)
}

func defaultStayFixturesPath() string {
	candidates := []string{
		filepath.Join("data", "stays.json"),
		filepath.Join("backend", "data", "stays.json"),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return candidates[0]
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
