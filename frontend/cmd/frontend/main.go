package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/router"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/setup"
	"github.com/Ghorpaderamdas/server-Hotel/shared/config"
	"github.com/Ghorpaderamdas/server-Hotel/shared/logger"
	"github.com/urfave/cli/v3"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

var Version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "kalsubai-frontend",
		Usage:   "Hotel Kalsubai web frontend",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config",
				Usage:   "folder with public.yaml and private.yaml",
				Sources: cli.EnvVars("KALSUBAI_CONFIG"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "backend API base URL (overrides api_url)",
				Sources: cli.EnvVars(config.APIURLEnv),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "log.level",
				Usage:   "Log level (debug, info, warn, error); overrides log_level",
				Sources: cli.EnvVars("KALSUBAI_LOGLEVEL"),
			},
			&cli.BoolFlag{
				Name:    "log.json",
				Usage:   "log as JSON",
				Sources: cli.EnvVars("KALSUBAI_LOGJSON"),
			},
		},
		Commands: []*cli.Command{
			newServeCmd(),
			newRoomsCmd(),
			newUsersCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func initLogger(clicmd *cli.Command, public config.Public) {
	level := public.LogLevel
	if l := clicmd.String("log.level"); l != "" {
		level = l
	}
	logger.Initialize(logger.Options{Level: level, JSON: public.LogJSON || clicmd.Bool("log.json")})
}

func newServeCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "start the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Value:   ":8081",
				Usage:   "listen address",
				Aliases: []string{"a"},
				Sources: cli.EnvVars("KALSUBAI_ADDRESS"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
		},
		Action: serveCmd,
	}
}

func serveCmd(ctx context.Context, clicmd *cli.Command) error {
	cfg, err := config.Load(clicmd.String("config"))
	if err != nil {
		return err
	}
	if apiURL := clicmd.String("api-url"); apiURL != "" {
		cfg.Public.APIURL = apiURL
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	initLogger(clicmd, cfg.Public)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up dependencies: %w", err)
	}

	server := &http.Server{
		Addr:         clicmd.String("address"),
		Handler:      router.SetupRouter(deps),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go deps.FormLimiter.Run(ctx, time.Minute)

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("starting frontend", "address", server.Addr, "api_url", cfg.Public.APIURL)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down frontend")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
