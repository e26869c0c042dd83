package main

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/application/resource"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/application/todo"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/application/user"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/infrastructure/db/boltdb"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/infrastructure/db/memory"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/infrastructure/db/postgres"
	rabbitpub "github.com/baechuer/real-time-ressys/services/resource-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/logger"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/handlers"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/router"
)

// sysClock implements resource.Clock using system time
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// Stores bundles the data stores of both resources and whatever must be closed
// on shutdown.
type Stores struct {
	Todos  todo.Store
	Users  user.Store
	Closer io.Closer
}

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server
	Stores Stores

	Publisher *rabbitpub.Publisher
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.Init(cfg)

	stores, err := OpenStores(context.Background(), cfg)
	if err != nil {
		zlog.Fatal().Err(err).Str("store", cfg.StoreDriver).Msg("store init failed")
	}

	app := NewApp(cfg, stores)
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Str("app", cfg.AppName).Msg("listening")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal().Err(err).Msg("server crashed")
		}
	}()

	<-ctx.Done()
	zlog.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// OpenStores connects the data store selected by STORE_DRIVER.
func OpenStores(ctx context.Context, cfg *config.Config) (Stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		db, err := memory.New()
		if err != nil {
			return Stores{}, err
		}
		zlog.Warn().Msg("memory store: data is lost on restart")
		return Stores{Todos: db.Todos(), Users: db.Users()}, nil

	case config.StoreDriverBolt:
		db, err := boltdb.Open(cfg.BoltPath)
		if err != nil {
			return Stores{}, err
		}
		zlog.Info().Str("path", cfg.BoltPath).Msg("bolt store opened")
		return Stores{Todos: db.Todos(), Users: db.Users(), Closer: db}, nil

	default:
		if u, err := url.Parse(cfg.DatabaseURL); err == nil {
			zlog.Info().
				Str("db_driver", cfg.DBDriver).
				Str("db_user", u.User.Username()).
				Str("db_host", u.Host).
				Str("db_db", u.Path).
				Msg("db config loaded")
		}

		db, err := postgres.Open(cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return Stores{}, err
		}

		schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := postgres.EnsureSchema(schemaCtx, db); err != nil {
			_ = db.Close()
			return Stores{}, err
		}
		return PostgresStores(db), nil
	}
}

func PostgresStores(db *sql.DB) Stores {
	return Stores{
		Todos:  postgres.NewTodoRepo(db),
		Users:  postgres.NewUserRepo(db),
		Closer: db,
	}
}

func NewApp(cfg *config.Config, stores Stores) *App {
	// publisher wiring
	var rabbit *rabbitpub.Publisher
	var pub resource.EventPublisher = resource.NoopPublisher{}

	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		rabbit = p
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: change events will not be published")
	}

	// Application
	todos := todo.New(stores.Todos, pub, sysClock{})
	users := user.New(stores.Users, pub, sysClock{})

	// Transport
	httpHandler := router.New(
		handlers.NewTodosHandler(todos),
		handlers.NewUsersHandler(users),
		handlers.NewHealthHandler(),
		cfg,
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		Stores:    stores,
		Publisher: rabbit,
	}
}

func (a *App) Close() {
	if a.Publisher != nil {
		_ = a.Publisher.Close()
	}
	if a.Stores.Closer != nil {
		if err := a.Stores.Closer.Close(); err != nil {
			zlog.Error().Err(err).Msg("store close failed")
		}
	}
}
