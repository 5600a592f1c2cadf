package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"velo-altitude/internal/climb"
	"velo-altitude/internal/config"
	"velo-altitude/internal/enrichment"
	"velo-altitude/internal/location"
	"velo-altitude/internal/store"
	"velo-altitude/internal/weather"
)

// deps are the constructors the commands build their services from
type deps struct {
	loadConfig func(path string) (*config.Config, error)
	newWeather func(logger *slog.Logger) (weather.Service, error)
	newStore   func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store[enrichment.EnrichedClimb], func() error, error)
	newLocator func(logger *slog.Logger) location.Service
}

func defaultDeps() deps {
	return deps{
		loadConfig: func(path string) (*config.Config, error) {
			if path == "" {
				return config.Load()
			}
			return config.LoadFile(path)
		},
		newWeather: weather.NewWeatherService,
		newStore:   openStore,
		newLocator: location.NewLocationService,
	}
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store[enrichment.EnrichedClimb], func() error, error) {
	if strings.ToLower(cfg.Store.Driver) != "redis" {
		return store.NewMemory[enrichment.EnrichedClimb](), func() error { return nil }, nil
	}
	client, err := store.Connect(ctx, store.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	return store.NewRedis[enrichment.EnrichedClimb](client, cfg.Redis.KeyPrefix, cfg.Redis.TTL, logger), client.Close, nil
}

// cli holds state shared by all subcommands
type cli struct {
	deps       deps
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd(d deps) *cobra.Command {
	c := &cli{deps: d}

	root := &cobra.Command{
		Use:           "velo-enrich",
		Short:         "Enrich cycling climbs with elevation profiles and annotations",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.deps.loadConfig(c.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			c.cfg = cfg
			c.logger = cfg.NewLogger()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a config file (default: ./config.yaml if present)")

	root.AddCommand(c.newBatchCmd(), c.newGPXCmd())
	return root
}

// readClimbs accepts either a JSON array of climbs or a single climb object.
func readClimbs(path string) ([]climb.ClimbSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var single climb.ClimbSummary
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("failed to decode climb in %s: %w", path, err)
		}
		return []climb.ClimbSummary{single}, nil
	}

	var climbs []climb.ClimbSummary
	if err := json.Unmarshal(data, &climbs); err != nil {
		return nil, fmt.Errorf("failed to decode climbs in %s: %w", path, err)
	}
	return climbs, nil
}

// openOutput returns stdout for an empty path.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, f.Close, nil
}
