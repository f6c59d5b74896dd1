package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brewery/internal/api"
	"brewery/internal/api/handler/v1handler"
	"brewery/internal/config"
	"brewery/internal/directory"
	"brewery/internal/region"
	"brewery/pkg/cache"
	"brewery/pkg/logger"
	"brewery/pkg/storage"
)

func setupServer(ctx context.Context, cfg *config.Config, strg storage.Storage, store cache.Store) func(ctx context.Context) {
	resolver := region.NewResolver(region.Options{
		RootDomain:    cfg.Region.RootDomain,
		Scheme:        cfg.Region.Scheme,
		AllowOverride: !cfg.IsProduction(),
	})

	server, err := api.NewServer(ctx, api.Deps{
		Deps: v1handler.Deps{
			Directory: directory.New(strg, directory.NewOptions(cfg)),
			Checks: map[string]v1handler.Pinger{
				"database": strg,
				"cache":    store,
			},
		},
		Resolver: resolver,
		Cache:    store,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			store, closeCache := getCache(ctx, cfg)
			defer closeCache()

			stopWebserver := setupServer(ctx, cfg, strg, store)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
