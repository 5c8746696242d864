package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreValidate(t *testing.T) {
	for _, d := range []string{DriverPostgres, DriverSQLite, DriverMemory} {
		assert.NoError(t, Store{Driver: d}.Validate(), d)
	}
	assert.EqualError(t, Store{Driver: "mysql"}.Validate(), `unknown store driver "mysql"`)
}
