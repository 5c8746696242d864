package cli

import (
	"context"
	"fmt"
	"log/slog"

	"adperf/internal/adapter/memory"
	"adperf/internal/adapter/postgres"
	"adperf/internal/adapter/sqlite"
	"adperf/internal/config/configs"
	"adperf/internal/core/port"
	"adperf/internal/db"
)

// openStore opens the store selected by STORE_DRIVER. The returned func
// releases its connections.
func (a *app) openStore(ctx context.Context) (port.Store, func(), error) {
	switch a.cfg.Store.Driver {
	case configs.DriverPostgres:
		if a.cfg.Psql.RunMigrations {
			if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewReportRepository(pool), pool.Close, nil

	case configs.DriverSQLite:
		conn, err := db.OpenSQLite(ctx, a.cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		a.logger.Info("sqlite store opened", slog.String("path", a.cfg.Store.SQLitePath))
		return sqlite.NewReportRepository(conn), func() { _ = conn.Close() }, nil

	case configs.DriverMemory:
		return memory.NewReportRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
}
