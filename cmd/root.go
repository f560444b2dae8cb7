package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/farellandr/resultboard/config"
	"github.com/farellandr/resultboard/internal/server"
)

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:          "resultsapi",
		Short:        "HTTP API for event categories and results",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(v)
		},
	}

	root.PersistentFlags().String("database-url", "", "database connection url (env DATABASE_URL)")
	root.PersistentFlags().String("log-level", "", "log level (env LOG_LEVEL)")
	_ = v.BindPFlag(config.KeyDatabaseURL, root.PersistentFlags().Lookup("database-url"))
	_ = v.BindPFlag(config.KeyLogLevel, root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newServeCmd(v))
	root.AddCommand(newMigrateCmd(v))
	return root
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(v)
		},
	}
	cmd.Flags().String("port", "", "listen port (env PORT)")
	_ = v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))
	return cmd
}

func runServe(v *viper.Viper) error {
	cfg, log, err := setup(v)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	return server.Start(cfg, log)
}

func setup(v *viper.Viper) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}
