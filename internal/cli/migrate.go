package cli

import (
	"github.com/spf13/cobra"

	"adperf/internal/db"
)

func newMigrateCmd(a *app) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations to PSQL_ADDRESS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := a.cfg.Psql.Addr.String()
			if down {
				if err := db.MigrateDown(addr); err != nil {
					return err
				}
				a.logger.Info("migrations reverted")
				return nil
			}
			if err := db.Migrate(addr); err != nil {
				return err
			}
			a.logger.Info("migrations applied successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert every migration instead")
	return cmd
}
