// Command floodmst serves MST-based flood-risk clustering over HTTP.
//
// Usage:
//
//	floodmst -config config/example.yaml
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/floodmst/config"
	"github.com/katalvlaran/floodmst/metrics"
	"github.com/katalvlaran/floodmst/nodesource"
	"github.com/katalvlaran/floodmst/pipeline"
	"github.com/katalvlaran/floodmst/server"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	nodes, err := nodesource.Generate(cfg.Grid)
	if err != nil {
		return err
	}
	logger.Info("generated nodes",
		zap.Int("width", cfg.Grid.Width),
		zap.Int("height", cfg.Grid.Height),
		zap.Int64("seed", cfg.Grid.Seed),
		zap.Int("nodes", len(nodes)),
	)

	opts := server.Options{
		Nodes:            nodes,
		Grid:             pipeline.GridSize{Width: cfg.Grid.Width, Height: cfg.Grid.Height},
		Defaults:         cfg.Defaults,
		RequireConnected: cfg.Clustering.RequireConnected,
		CrossCheck:       cfg.Clustering.CrossCheck,
		MaxBodyBytes:     cfg.Server.MaxBodyBytes,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		Logger:           logger,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metrics.NewRegistry()
		opts.MetricsPath = cfg.Metrics.Path
	}
	srv := server.New(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gs := server.NewGracefulServer(cfg.Server.Addr, srv.Routes(), server.Timeouts{
		Read:     cfg.Server.ReadTimeout,
		Write:    cfg.Server.WriteTimeout,
		Idle:     cfg.Server.IdleTimeout,
		Shutdown: cfg.Server.ShutdownTimeout,
	}, logger)

	return gs.ListenAndServe(ctx)
}

// newLogger builds a production or development zap logger at the configured level.
func newLogger(cfg config.Logging) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = level

	return zc.Build()
}
