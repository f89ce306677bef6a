package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/apkshelf/apkshelf/pkg/cli/config"
	controller "github.com/apkshelf/apkshelf/pkg/controller/http"
	"github.com/apkshelf/apkshelf/pkg/usecase"
	"github.com/apkshelf/apkshelf/pkg/utils/async"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		githubCfg  config.GitHub
		catalogCfg config.Catalog
		sentryCfg  config.Sentry
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			targets, err := catalogCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load target catalog")
			}

			releaseClient, err := githubCfg.NewClient()
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			logger.Info("Starting apkshelf server",
				slog.String("addr", serverCfg.Addr),
				slog.Int("targets", len(targets)),
				slog.Duration("refresh_interval", serverCfg.RefreshInterval),
				slog.String("github_auth", githubCfg.AuthMode()),
				slog.Any("github", githubCfg),
			)

			// Create use cases
			resolverUC := usecase.NewResolver(releaseClient, usecase.WithConcurrency(catalogCfg.Concurrency))
			boardUC := usecase.NewBoard(resolverUC, targets)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				controller.UseCases{
					Board:      boardUC,
					Visit:      usecase.NewVisit(),
					Disclaimer: usecase.NewDisclaimer(),
				},
				controller.WithAddr(serverCfg.Addr),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Resolve releases in the background; the page serves pending buttons until then
			refreshCtx, stopRefresh := context.WithCancel(ctx)
			defer stopRefresh()
			go async.Isolate(refreshCtx, "release board refresh", func(ctx context.Context) error {
				boardUC.Run(ctx, serverCfg.RefreshInterval)
				return nil
			})

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-serverErr:
				return goerr.Wrap(err, "HTTP server failed")
			}

			stopRefresh()

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
