package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sealive/herodeck/internal/autoplay"
	"github.com/sealive/herodeck/internal/catalog"
	"github.com/sealive/herodeck/internal/httpserver"
	"github.com/sealive/herodeck/internal/logging"
	"github.com/sealive/herodeck/internal/slideshow"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// newPlayer builds the controller and autoplay driver from cfg.
func newPlayer(cfg appConfig, logger *zap.Logger) (*autoplay.Player, error) {
	slides, err := catalog.LoadOrDefault(cfg.SlidesFile)
	if err != nil {
		return nil, err
	}
	ctrl, err := slideshow.New(slides, slideshow.WithDwell(cfg.Dwell), slideshow.WithTick(cfg.Tick))
	if err != nil {
		return nil, err
	}
	if !cfg.Autoplay {
		ctrl.Pause()
	}
	return autoplay.New(ctrl, autoplay.WithLogger(logger.Named("autoplay"))), nil
}

// runServer drives the carousel headlessly and serves the HTTP API until
// SIGINT or SIGTERM.
func runServer(cfg appConfig) error {
	logger, cleanupLogger, err := logging.New(logging.Config{
		Level:    cfg.LogLevel,
		Env:      cfg.LogEnv,
		FilePath: cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer cleanupLogger()

	player, err := newPlayer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize slideshow: %w", err)
	}
	defer player.Close()

	apiServer := httpserver.NewServer(cfg.APIAddr, player, logger.Named("http"))
	if err := apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	logger.Info("herodeck started",
		zap.String("version", version),
		zap.String("api", cfg.APIAddr),
		zap.Int("slides", len(player.Slides())),
		zap.Duration("dwell", cfg.Dwell),
		zap.Duration("tick", cfg.Tick),
		zap.Bool("autoplay", cfg.Autoplay),
		zap.String("config", cfg.ConfigPath))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		stopped := make(chan error, 1)
		go func() { stopped <- apiServer.Stop() }()

		select {
		case err := <-stopped:
			return err
		case <-time.After(10 * time.Second):
			fmt.Fprintln(os.Stderr, "Shutdown timed out, forcing exit.")
			os.Exit(1)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server: errgroup exited with error", zap.Error(err))
		return err
	}
	return nil
}
