package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appcatalog/config"
	"appcatalog/server"
	"appcatalog/telemetry"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type flags struct {
	envFile string
	host    string
	port    int
}

func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "catalog",
		Short:        "Serve the application catalog HTTP API",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "dotenv file loaded before the environment (default .env, optional)")
	cmd.Flags().StringVar(&f.host, "host", "", "override SERVER_HOST")
	cmd.Flags().IntVar(&f.port, "port", 0, "override SERVER_PORT")
	return cmd
}

// loadConfig aplica as flags explicitamente passadas por cima do ambiente.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = f.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = f.port
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config.Config) error {
	logger, err := telemetry.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	shutdownTracing, err := telemetry.SetupTracing(ctx, "catalog", cfg.OTel.Endpoint, cfg.OTel.Enabled)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.WithError(err).Warn("tracing shutdown")
		}
	}()

	logger.WithFields(logrus.Fields{
		"addr":            cfg.Server.Addr(),
		"driver":          cfg.Store.Driver,
		"max_fetch_limit": cfg.Limits.MaxFetchLimit,
		"workers":         cfg.Server.Workers,
		"rate_enabled":    cfg.Rate.Enabled,
		"rate_stats":      cfg.Stats.Enabled,
	}).Info("starting catalog")

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
