package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joefazee/qrmenu/app"
	"github.com/joefazee/qrmenu/internal/deps"
	"github.com/joefazee/qrmenu/internal/logger"
	"github.com/joefazee/qrmenu/internal/nexus"
)

type globalFlags struct {
	configFile string
	store      string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "menuctl",
		Short: "Maintenance commands for the QR menu store",
		Long: `menuctl operates directly on the configured store, using the same
environment variables as the API server.

Available subcommands:
  activate-products - Mark every product as active
  create-admin      - Add an admin account for the panel`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "Config file (default: .env when present)")
	root.PersistentFlags().StringVar(&flags.store, "store", "", "Store backend override: memory, redis or postgres")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newActivateProductsCmd(flags))
	root.AddCommand(newCreateAdminCmd(flags))
	return root
}

// withContainer loads config, opens the store and hands a wired container to fn.
func withContainer(ctx context.Context, flags *globalFlags, fn func(*deps.Container) error) error {
	var opts []nexus.LoaderOption
	if flags.configFile != "" {
		opts = append(opts, nexus.WithFileName(flags.configFile))
	}
	if flags.store != "" {
		opts = append(opts, nexus.WithOverrides(&app.Config{Store: app.StoreConfig{Backend: flags.store}}))
	}

	cfg, err := app.LoadConfig(opts...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := logger.LevelOff
	if flags.verbose {
		level = logger.LevelDebug
	}
	log := logger.NewZeroLogger(os.Stderr, level, logger.Fields{"service": "menuctl", "env": cfg.Env})

	backends, err := app.OpenBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer backends.Close()

	container, err := app.NewContainer(cfg, backends, log)
	if err != nil {
		return err
	}
	return fn(container)
}
