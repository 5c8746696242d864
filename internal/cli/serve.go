package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "adperf/internal/adapter/http"
	"adperf/internal/adapter/usecase"
	"adperf/internal/db"
	"adperf/internal/telemetry"
)

func newServeCmd(a *app) *cobra.Command {
	var seedDemo bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the reporting API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return a.serve(ctx, seedDemo)
		},
	}
	cmd.Flags().BoolVar(&seedDemo, "seed-demo", false, "load the demo data set before serving")
	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within HTTP_SHUTDOWN_TIMEOUT.
func (a *app) serve(ctx context.Context, seedDemo bool) error {
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	if seedDemo {
		res, err := db.Seed(ctx, store, db.DefaultSeedOptions())
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		a.logger.Info("demo data loaded",
			slog.Int("campaigns", res.Campaigns),
			slog.Int("ad_groups", res.AdGroups),
			slog.Int("stats", res.Stats),
		)
	}

	var opts []httpadapter.Option
	if a.cfg.Metrics.Enabled {
		opts = append(opts, httpadapter.WithMetrics(telemetry.New("adperf"), a.cfg.Metrics.Path))
	}
	handler := httpadapter.NewHandler(usecase.NewReportUseCase(store), a.logger, opts...)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening",
			slog.Int("port", int(a.cfg.HTTP.Port)),
			slog.String("store", a.cfg.Store.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	a.logger.Info("server gracefully stopped")
	return nil
}
