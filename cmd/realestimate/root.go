package main

import (
	"context"
	"time"

	"github.com/realestimate/realestimate/internal/cache"
	"github.com/realestimate/realestimate/internal/calculation"
	"github.com/realestimate/realestimate/internal/config"
	"github.com/realestimate/realestimate/internal/service"
	dec "github.com/realestimate/realestimate/pkg/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const redisPingTimeout = 2 * time.Second

// app carries what every subcommand needs once settings are loaded.
type app struct {
	settingsPath string
	logLevel     string

	settings *config.Settings
	logger   *zap.Logger
	service  *service.ComparisonService
	closers  []func() error
}

// newRootCmd builds the command tree. The returned app holds the resources
// opened by the chosen subcommand; release them with run or close.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:          "realestimate",
		Short:        "Compare buying a property with a mortgage against renting and investing",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "path to settings file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newCompareCmd(a),
		newQuickCmd(a),
		newExampleCmd(a),
		newFormatsCmd(),
		newServeCmd(a),
	)
	return root, a
}

// run executes the command and closes the app whether or not it failed.
// cobra skips post-run hooks after a RunE error.
func run(root *cobra.Command, a *app) error {
	defer a.close()
	return root.Execute()
}

func (a *app) init(ctx context.Context) error {
	settings, err := config.LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}
	logger, err := initializeLogger(settings.Logging, a.logLevel)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logger
	a.closers = append(a.closers, func() error {
		_ = logger.Sync()
		return nil
	})

	engine := calculation.NewEngineWithPolicy(dec.NewPolicy(settings.Precision.Scale))
	engine.SetLogger(calculation.NewZapLogger(logger))
	a.service = service.NewComparisonService(engine, a.newCache(ctx), settings.Cache.Prefix, logger)
	return nil
}

// newCache returns a Redis cache when one is configured and reachable,
// otherwise an in-memory cache.
func (a *app) newCache(ctx context.Context) cache.Cache {
	cfg := a.settings.Cache
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache(cfg.TTL)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	rc := cache.NewRedisCache(cfg.RedisAddr, cfg.TTL)
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		a.logger.Warn("redis unavailable, using in-memory cache",
			zap.String("op", "init"), zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = rc.Close()
		return cache.NewMemoryCache(cfg.TTL)
	}
	a.logger.Debug("using redis cache", zap.String("addr", cfg.RedisAddr))
	a.closers = append(a.closers, rc.Close)
	return rc
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}
