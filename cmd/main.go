// Package main provides the CLI entrypoint for the brewery directory service.
// It wires subcommands (serve, migrate, import), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brewery/internal/config"
	"brewery/pkg/cache"
	"brewery/pkg/cache/redis"
	"brewery/pkg/cache/valkey"
	"brewery/pkg/logger"
	"brewery/pkg/storage/postgres"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getCache creates the response cache client selected by cfg.Cache.Driver and
// returns it along with a cleanup function.
func getCache(ctx context.Context, cfg *config.Config) (cache.Store, func()) {
	var (
		store cache.Store
		err   error
	)
	switch strings.ToLower(cfg.Cache.Driver) {
	case "redis":
		store = redis.New(redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
	case "valkey":
		store, err = valkey.New(valkey.Options{
			Addrs:    strings.Split(cfg.Cache.Addr, ","),
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
	default:
		logger.Fatal(ctx, "unknown cache driver", zap.String("driver", cfg.Cache.Driver))
	}
	if err != nil {
		logger.Fatal(ctx, "could not create cache client", zap.Error(err))
	}

	return store, func() {
		logger.Info(ctx, "closing cache client...")
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "could not close cache client", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "brewery",
		Short: "Brewery directory service",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		importCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
