package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ayase-lab/mmadmin/internal/config"
	"github.com/ayase-lab/mmadmin/internal/postgres"
	redisx "github.com/ayase-lab/mmadmin/internal/redis"
	postgresrepo "github.com/ayase-lab/mmadmin/internal/repository/postgres"
	redisrepo "github.com/ayase-lab/mmadmin/internal/repository/redis"
	"github.com/ayase-lab/mmadmin/internal/service"
	"github.com/ayase-lab/mmadmin/internal/service/booking"
	"github.com/ayase-lab/mmadmin/internal/service/calendar"
	"github.com/ayase-lab/mmadmin/internal/service/events"
	httpgin "github.com/ayase-lab/mmadmin/internal/transport/http/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	httpServer *http.Server
	pubsub     *redisx.EventsPubSub
	services   *service.Services
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize dependencies
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Name,
		cfg.Postgres.SSLMode,
	)

	pgxPool, err := postgres.New(context.Background(), postgres.Config{DSN: dsn})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redisx.New(context.Background(), redisx.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	store := postgresrepo.NewStore(pgxPool)
	cache := redisrepo.New(rdb)
	pubsub := redisx.NewEventsPubSub(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(rdb, redisx.RateLimitPrefix("booking"), 10, 1*time.Minute)
	idempotencyStore := redisrepo.NewIdempotencyStore(rdb, 2*time.Hour)

	// Initialize services
	services := service.NewServices(store, cache, pubsub, service.Config{
		Calendar: calendar.Config{
			DeadlineDays: cfg.Booking.PrivateDeadlineDays,
		},
		Events: events.Config{
			BandDefaults: cfg.Booking.BandDefaults,
		},
		Booking: booking.Config{
			DeadlineDays: cfg.Booking.PrivateDeadlineDays,
		},
	})

	// Initialize Gin router
	router := httpgin.NewRouter(services, idempotencyStore, limiter, logger)

	return &App{
		cfg:      cfg,
		logger:   logger,
		pubsub:   pubsub,
		services: services,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Drop local month snapshots when another instance mutates the schedule
	g.Go(func() error {
		err := a.pubsub.Subscribe(gCtx, func(ctx context.Context, eventID uuid.UUID, date string) {
			a.services.Calendar.InvalidateSnapshot(date)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("events subscriber: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
