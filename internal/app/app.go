// Package app assembles the question/answer service: it opens the configured
// store, builds the services and the Gin router on top of it, and runs the
// HTTP server until its context ends.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/tbourn/qa-backend/internal/config"
	httpapi "github.com/tbourn/qa-backend/internal/http"
	"github.com/tbourn/qa-backend/internal/repo"
	"github.com/tbourn/qa-backend/internal/services"
)

// Store is a question/answer store with a lifecycle. repo.SQLStore and
// repo.MemoryStore both satisfy it.
type Store interface {
	services.QuestionStore
	services.AnswerStore
	Ping(ctx context.Context) error
	Close() error
}

// OpenStore opens the store selected by cfg.DB.Driver and bootstraps its
// schema when cfg.DB.Bootstrap is set.
func OpenStore(cfg config.Config) (Store, error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("using in-memory store; data is lost on exit")
		return repo.NewMemoryStore(), nil
	}

	db, err := repo.Open(repo.Options{
		Driver:       cfg.DB.Driver,
		DSN:          cfg.DB.URL,
		Path:         cfg.DB.Path,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		Tracing:      cfg.OTEL.Enabled,
		Silent:       cfg.LogLevel != "debug",
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.DB.Driver, err)
	}
	st := repo.NewSQLStore(db)

	if cfg.DB.Bootstrap {
		if err := repo.BootstrapSchema(db); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	log.Info().
		Str("driver", cfg.DB.Driver).
		Int("max_open_conns", cfg.DB.MaxOpenConns).
		Dur("query_timeout", cfg.DB.QueryTimeout).
		Bool("bootstrap", cfg.DB.Bootstrap).
		Msg("store opened")
	return st, nil
}

// App is a wired HTTP server over a Store.
type App struct {
	cfg    config.Config
	store  Store
	server *http.Server
}

// New builds the router and HTTP server over store.
func New(cfg config.Config, store Store) *App {
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, httpapi.Deps{
		Questions: services.NewQuestionService(store, cfg.DB.QueryTimeout),
		Answers:   services.NewAnswerService(store, cfg.DB.QueryTimeout),
		Ready:     store.Ping,
	}, cfg)

	return &App{
		cfg:   cfg,
		store: store,
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			MaxHeaderBytes:    cfg.MaxHeaderBytes,
		},
	}
}

// Handler exposes the router.
func (a *App) Handler() http.Handler { return a.server.Handler }

// Run listens on the configured port and serves until ctx is done.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests within cfg.ShutdownTimeout. It returns nil on a clean shutdown.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Dur("timeout", a.cfg.ShutdownTimeout).Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return a.server.Shutdown(sctx)
	})

	return g.Wait()
}

// Close releases the store.
func (a *App) Close() error {
	return a.store.Close()
}
