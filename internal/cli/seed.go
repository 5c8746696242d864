package cli

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/spf13/cobra"

	"adperf/internal/config/configs"
	"adperf/internal/core/domain"
	"adperf/internal/db"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		opts     = db.DefaultSeedOptions()
		end      string
		randSeed int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a generated demo data set into the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Store.Driver == configs.DriverMemory {
				return errors.New("the memory store does not outlive the command; use serve --seed-demo")
			}
			if end != "" {
				d, err := domain.ParseDate(end)
				if err != nil {
					return err
				}
				opts.End = d
			}
			opts.Rand = rand.New(rand.NewSource(randSeed))

			store, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			res, err := db.Seed(cmd.Context(), store, opts)
			if err != nil {
				return err
			}
			a.logger.Info("seeded",
				slog.Int("campaigns", res.Campaigns),
				slog.Int("ad_groups", res.AdGroups),
				slog.Int("stats", res.Stats),
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Campaigns, "campaigns", opts.Campaigns, "number of campaigns")
	cmd.Flags().IntVar(&opts.AdGroupsPerCampaign, "ad-groups", opts.AdGroupsPerCampaign, "ad groups per campaign")
	cmd.Flags().IntVar(&opts.Days, "days", opts.Days, "days of stats per ad group")
	cmd.Flags().StringVar(&end, "end", "", "last day of generated stats, YYYY-MM-DD (default today)")
	cmd.Flags().Int64Var(&randSeed, "rand-seed", 1, "seed of the value generator")
	return cmd
}
