package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pixelvide/mailto-go/pkg/cache"
	"github.com/pixelvide/mailto-go/pkg/config"
	"github.com/pixelvide/mailto-go/pkg/database"
	"github.com/pixelvide/mailto-go/pkg/telemetry"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// bootstrap loads configuration and sets up logging and tracing for a
// command. The returned func flushes the tracer.
func bootstrap(cmd *cobra.Command) (*config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	telemetry.SetGlobalLogger(cfg.LogLevel, cfg.LogPretty)

	if !cfg.Tracing {
		return cfg, func() {}, nil
	}

	tp, err := telemetry.InitTracer(cfg.ServiceName, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}
	return cfg, func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error shutting down tracer")
		}
	}, nil
}

// openLinkCache connects the configured cache store. It returns a nil cache
// when caching is disabled.
func openLinkCache(ctx context.Context, cfg *config.Config) (*cache.LinkCache, func(), error) {
	switch cfg.Cache.Store {
	case "none", "":
		return nil, func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store := cache.NewRedisStore(client, cfg.Cache.Prefix)
		return cache.NewLinkCache(store, cfg.Cache.TTL), func() { client.Close() }, nil
	case "database":
		db, err := database.NewFactory().Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store := cache.NewDatabaseStore(db, cfg.Database.Table, cfg.Database.Connection)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to create cache table: %w", err)
		}
		return cache.NewLinkCache(store, cfg.Cache.TTL), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported cache store: %s", cfg.Cache.Store)
	}
}

// readInput reads a named file, or standard input for "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}
