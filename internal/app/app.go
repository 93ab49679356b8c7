package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/catalog/internal/catalog"
	"github.com/MrSnakeDoc/catalog/internal/config"
	"github.com/MrSnakeDoc/catalog/internal/httpserver"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/deps"
	"github.com/MrSnakeDoc/catalog/internal/httpserver/mw"
	"github.com/MrSnakeDoc/catalog/internal/logger"
	"github.com/MrSnakeDoc/catalog/internal/sources/seed"
	"github.com/MrSnakeDoc/catalog/internal/utils"
	"github.com/MrSnakeDoc/catalog/internal/version"
	"github.com/MrSnakeDoc/catalog/internal/view"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	backend *backend
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Fail fast if the store is unavailable.
	b, err := openBackend(context.Background(), cfg, loggerClient)
	if err != nil {
		return nil, err
	}
	loggerClient.Info("store initialized", logger.String("store", b.name))

	if cfg.SeedFile != "" {
		if err := importSeed(context.Background(), cfg.SeedFile, b, loggerClient); err != nil {
			utils.CloseLogged(loggerClient, b.name, b.closer)
			return nil, err
		}
	}

	views, err := view.New()
	if err != nil {
		utils.CloseLogged(loggerClient, b.name, b.closer)
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Build:        version.Current(),
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		RateLimit: mw.RateLimitConfig{
			Burst:             cfg.RateBurst,
			RefillPerIPPerMin: cfg.RateRefillPerMin,
			TrustProxy:        cfg.TrustProxy,
		},
		StoreName: b.name,
		PingStore: b.ping,
		Views:     views,
		Genres:    catalog.NewGenreWorkflow(b.repos, loggerClient.With(logger.String("component", "genre"))),
		Instances: catalog.NewBookInstanceWorkflow(b.repos, loggerClient.With(logger.String("component", "bookinstance"))),
	}

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		server:  httpserver.New(cfg, loggerClient, d),
		backend: b,
	}, nil
}

func importSeed(ctx context.Context, path string, b *backend, log logger.Logger) error {
	f, err := seed.NewLoader(path).Load()
	if err != nil {
		return err
	}
	if _, err := seed.NewImporter(b.repos, log).Import(ctx, f); err != nil {
		return fmt.Errorf("failed to import seed %s: %w", path, err)
	}
	return nil
}

func (a *App) Run() error {
	a.logger.Infof("Starting catalog %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("catalog %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		utils.CloseLogged(a.logger, a.backend.name, a.backend.closer)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	utils.CloseLogged(a.logger, a.backend.name, a.backend.closer)
	a.logger.Info("catalog stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
