package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"docadmin/config"
	"docadmin/internal/app"
	"docadmin/pkg/logger"

	"github.com/spf13/cobra"
)

const serveCmdName = "serve"

func newServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   serveCmdName,
		Short: "Serve the document admin HTTP API",
		Long: `Serve the document admin HTTP API.

Storage is selected by STORAGE_TYPE (memory or postgres). Postgres settings come from
POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_DB, POSTGRES_HOST and POSTGRES_PORT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadServerConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = opts.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = opts.logFormat
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			ctx = logger.WithLogger(ctx, log)

			a, err := app.NewApp(ctx, cfg)
			if err != nil {
				return err
			}
			return a.Run(ctx)
		},
	}
}

func loadServerConfig() (cfg config.Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("config: %v", r)
		}
	}()
	return config.LoadConfig(), nil
}
