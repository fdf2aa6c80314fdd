package system

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/thirtyday/internal/cache"
	"github.com/julianstephens/thirtyday/internal/cli"
	"github.com/julianstephens/thirtyday/internal/config"
	"github.com/julianstephens/thirtyday/internal/logger"
	"github.com/julianstephens/thirtyday/internal/server"
	"github.com/julianstephens/thirtyday/internal/service"
	"github.com/julianstephens/thirtyday/internal/storage"
)

type ServeCmd struct {
	Port    int    `help:"Listen port. Overrides BACKEND_PORT."`
	BaseURL string `name:"base-url" help:"Public origin for share links. Overrides PUBLIC_BASE_URL."`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	if c.Port != 0 {
		cfg.Port = c.Port
	}
	if c.BaseURL != "" {
		cfg.PublicBaseURL = c.BaseURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := serverStore(ctx, cfg)
	if err != nil {
		return err
	}
	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []service.Option{service.WithBaseURL(cfg.BaseURL())}
	if cfg.RedisAddr != "" {
		redisCache, err := cache.Dial(runCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.LeaderboardTTL)
		if err != nil {
			return err
		}
		defer redisCache.Close()
		opts = append(opts, service.WithCache(redisCache))
		logger.Info("Leaderboard cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.LeaderboardTTL)
	}

	srv := server.New(service.New(store, opts...), server.Options{AllowedOrigins: cfg.Origins()})
	ctx.Printf("Serving on %s (share links at %s)\n", cfg.Addr(), cfg.BaseURL())
	return srv.Run(runCtx, cfg.Addr())
}

// serverStore prefers DATABASE_URL, then THIRTYDAY_DB_PATH, then --config.
func serverStore(ctx *cli.Context, cfg *config.Server) (storage.Provider, error) {
	switch {
	case cfg.DatabaseURL != "":
		return cli.OpenStore(cfg.DatabaseURL)
	case cfg.DBPath != "":
		return cli.OpenStore(cfg.DBPath)
	default:
		return ctx.Store, nil
	}
}
