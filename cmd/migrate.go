package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/farellandr/resultboard/config"
)

// Connecting a store migrates it, so migrate only has to dial and close.
func newMigrateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables or indexes in the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(v)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			dial, err := config.Dialer(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			s, err := dial(ctx)
			if err != nil {
				return err
			}
			log.Info("database migrated")
			return s.Close(ctx)
		},
	}
}
