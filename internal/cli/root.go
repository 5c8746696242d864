// Package cli wires configuration, storage and the HTTP server into the
// adperf command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"adperf/internal/config"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	envFile string
	cfg     config.Config
	logger  *slog.Logger
}

// NewRootCmd builds the command tree. Running it without a subcommand
// serves the API.
func NewRootCmd() *cobra.Command {
	a := &app{}
	serve := newServeCmd(a)

	root := &cobra.Command{
		Use:   "adperf",
		Short: "Campaign performance reporting API",
		Long: `adperf serves campaign, ad group and daily performance reports over HTTP.

Configuration is read from environment variables, optionally preloaded from a
.env file. STORE_DRIVER selects postgres, sqlite or memory storage.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Log.New(cmd.OutOrStdout()).With(slog.String("env", cfg.Env))
			return nil
		},
		RunE: serve.RunE,
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(
		serve,
		newMigrateCmd(a),
		newSeedCmd(a),
		newReportCmd(a),
	)
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
