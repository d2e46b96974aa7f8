package cli

import (
	"fmt"
	"time"

	"docadmin/config"
	"docadmin/internal/adapter/out/adminapi"
	"docadmin/pkg/logger"

	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	envFile   string
	apiURL    string
	timeout   time.Duration
	pageSize  int
	logLevel  string
	logFormat string

	client config.ClientConfig
}

// NewRootCmd creates the root command for the docadmin CLI.
func NewRootCmd(ver string) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "docadmin",
		Short:         "Document admin server and console",
		Long:          "docadmin serves the document admin API and browses project documents page by page.",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example:       rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flags.StringVar(&opts.apiURL, "api-url", "", "admin API base URL (overrides ADMIN_API_URL)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "per-request timeout (overrides ADMIN_API_TIMEOUT)")
	flags.IntVar(&opts.pageSize, "page-size", 0, "documents per page (overrides DOCUMENTS_PAGE_SIZE)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")

	cmd.AddCommand(
		newServeCmd(opts),
		newProjectsCmd(opts),
		newDocumentsCmd(opts),
		newBrowseCmd(opts),
	)

	return cmd
}

// resolve loads the environment, applies flag overrides and attaches a logger to the command context.
// serve reads the server configuration itself and skips the client settings.
func (o *globalOptions) resolve(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return err
	}
	if cmd.Name() == serveCmdName {
		return nil
	}

	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.BaseURL = o.apiURL
	}
	if flags.Changed("timeout") {
		if o.timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", o.timeout)
		}
		cfg.Timeout = o.timeout
	}
	if flags.Changed("page-size") {
		if o.pageSize <= 0 {
			return fmt.Errorf("page-size must be positive, got %d", o.pageSize)
		}
		cfg.PageSize = o.pageSize
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	o.client = cfg

	log := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	cmd.SetContext(logger.WithLogger(cmd.Context(), log))
	return nil
}

// loadClientConfig turns the config package's panics on malformed variables into errors.
func loadClientConfig() (cfg config.ClientConfig, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("config: %v", r)
		}
	}()
	return config.LoadClientConfig(), nil
}

func (o *globalOptions) newClient() (*adminapi.Client, error) {
	return adminapi.New(adminapi.Config{
		BaseURL:  o.client.BaseURL,
		Timeout:  o.client.Timeout,
		PageSize: o.client.PageSize,
	})
}

const rootCmdExample = `  # Serve the admin API with a seeded demo project
  SEED_DEMO=true docadmin serve

  # List projects
  docadmin projects list

  # Show the page after a given document
  docadmin documents list demo --after 0190c5d2-...

  # Browse documents interactively
  docadmin browse demo`
