package configs

import "fmt"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Store selects the reporting store. SQLitePath is only used by the sqlite
// driver; the memory driver starts empty unless seeded.
type Store struct {
	Driver     string `env:"DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"adperf.db"`
}

// Validate rejects unknown drivers.
func (s Store) Validate() error {
	switch s.Driver {
	case DriverPostgres, DriverSQLite, DriverMemory:
		return nil
	}
	return fmt.Errorf("unknown store driver %q", s.Driver)
}
