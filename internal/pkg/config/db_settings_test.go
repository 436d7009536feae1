//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type:   PostgresDbType,
				DSN:    "host=localhost user=postgres password=postgres port=5432 sslmode=disable",
				DBName: "buccusa",
			},
			expectedError: false,
		},
		{
			name: "valid sqlite settings without DSN",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN:    "host=localhost",
				DBName: "buccusa",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
		{
			name: "postgres missing DSN",
			settings: &DatabaseSettings{
				Type:   PostgresDbType,
				DBName: "buccusa",
			},
			expectedError: true,
		},
		{
			name: "negative pool size",
			settings: &DatabaseSettings{
				Type:         SqliteDbType,
				MaxOpenConns: -1,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
