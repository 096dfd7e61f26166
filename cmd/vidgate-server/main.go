package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/vidgate/vidgate-go/internal/core/service"
	"github.com/vidgate/vidgate-go/internal/infra/confloader"
	"github.com/vidgate/vidgate-go/internal/infra/shutdown"
	"github.com/vidgate/vidgate-go/internal/server/config"
	"github.com/vidgate/vidgate-go/internal/server/httpserver"
	"github.com/vidgate/vidgate-go/internal/storage"
	"github.com/vidgate/vidgate-go/internal/storage/memory"
	"github.com/vidgate/vidgate-go/internal/telemetry/logger"
	"github.com/vidgate/vidgate-go/internal/telemetry/metric"
	"github.com/vidgate/vidgate-go/pkg/token"
)

// Build information, set via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("vidgate-server %s (commit: %s, built: %s)\n", version, commit, buildTime)
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	slog.SetDefault(log)

	log.Info("starting vidgate-server",
		"version", version,
		"commit", commit,
		"config", *configFile)
	log.Debug("configuration loaded", "config", config.Sanitize(cfg))

	engine, err := initStorage(cfg, log)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	if cfg.Auth.TokenSecret == "" {
		secret, err := token.GenerateWithLength(32)
		if err != nil {
			return fmt.Errorf("generate token secret: %w", err)
		}
		cfg.Auth.TokenSecret = secret
		log.Warn("auth.token_secret not set, using an ephemeral secret; sessions will not survive a restart")
	}

	authSvc := service.NewAuthService(engine.Users(), engine.Revocations(), service.AuthConfig{
		TokenSecret:               []byte(cfg.Auth.TokenSecret),
		TokenTTL:                  cfg.Auth.TokenTTL,
		CredentialAttemptsPerHour: cfg.Auth.CredentialAttemptsPerHour,
	}, log)
	videoSvc := service.NewVideoService(engine.Videos(), log)

	if cfg.Catalog.Seed {
		if err := videoSvc.SeedCatalog(context.Background()); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	metrics := metric.NewRegistry()
	router := httpserver.NewRouter(&httpserver.RouterConfig{
		AuthService:       authSvc,
		VideoService:      videoSvc,
		Metrics:           metrics,
		Logger:            log,
		RequestsPerSecond: cfg.Limits.RequestsPerSecond,
		Burst:             cfg.Limits.Burst,
		TrustProxy:        cfg.Limits.TrustProxy,
	})

	httpServer := httpserver.New(cfg.Server.Addr, router, httpserver.Options{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	watcher, err := watchConfig(*configFile, log)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	shutdownHandler := shutdown.NewHandler(cfg.Server.ShutdownTimeout)
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})
	if watcher != nil {
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			return watcher.Stop()
		})
	}
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("closing storage engine")
		return engine.Close()
	})

	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			shutdownHandler.Trigger()
		}
	}()

	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}
	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// initStorage selects and opens the configured storage engine.
func initStorage(cfg *config.ServerConfig, log *slog.Logger) (storage.Engine, error) {
	switch cfg.Storage.Engine {
	case config.EngineBadger:
		return storage.NewBadgerEngine(storage.BadgerConfig{
			Dir: cfg.Storage.DataDir,
		}, log)
	default:
		return memory.New(), nil
	}
}

// watchConfig reloads the log level when the config file changes.
// Other settings require a restart.
func watchConfig(configFile string, log *slog.Logger) (*confloader.Watcher, error) {
	if configFile == "" {
		return nil, nil
	}

	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		return nil, err
	}

	watcher.OnChange(func(path string) {
		cfg, err := loadConfig(path)
		if err != nil {
			log.Warn("config reload failed", "path", path, "error", err)
			return
		}
		if cfg.Log.Level != logger.GetLevel() {
			log.Info("log level changed", "level", cfg.Log.Level)
			logger.SetLevel(cfg.Log.Level)
		}
	})
	watcher.StartAsync()
	return watcher, nil
}
