package postgres

import (
	"testing"

	"github.com/Layr-Labs/eigenops/internal/config"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ConnectionString(t *testing.T) {
	t.Run("Should build a connection string from the database config", func(t *testing.T) {
		pgConfig := PostgresConfigFromDbConfig(&config.DatabaseConfig{
			Host:       "localhost",
			Port:       5433,
			User:       "eigen",
			Password:   "secret",
			DbName:     "eigenops",
			SchemaName: "cursors",
		})
		connStr, err := connectionString(pgConfig, pgConfig.DbName)
		require.NoError(t, err)
		assert.Equal(t, "host=localhost user=eigen password=secret dbname=eigenops port=5433 sslmode=disable TimeZone=UTC search_path=cursors", connStr)
	})
	t.Run("Should default the port and omit empty credentials", func(t *testing.T) {
		connStr, err := connectionString(&PostgresConfig{Host: "db", DbName: "eigenops"}, "eigenops")
		require.NoError(t, err)
		assert.Equal(t, "host=db dbname=eigenops port=5432 sslmode=disable TimeZone=UTC", connStr)
	})
	t.Run("Should target the maintenance database when asked", func(t *testing.T) {
		connStr, err := connectionString(&PostgresConfig{Host: "db", DbName: "eigenops", SSLMode: "require"}, "postgres")
		require.NoError(t, err)
		assert.Equal(t, "host=db dbname=postgres port=5432 sslmode=require TimeZone=UTC", connStr)
	})
	t.Run("Should reject an unknown ssl mode", func(t *testing.T) {
		_, err := connectionString(&PostgresConfig{Host: "db", DbName: "eigenops", SSLMode: "maybe"}, "eigenops")
		var cfgErr *errorTypes.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})
}

func Test_ValidateConfig(t *testing.T) {
	cases := []struct {
		name  string
		cfg   PostgresConfig
		field string
	}{
		{"missing host", PostgresConfig{DbName: "eigenops"}, config.DatabaseHost},
		{"quoted db name", PostgresConfig{Host: "db", DbName: `eigen"; DROP`}, config.DatabaseDbName},
		{"db name starting with a digit", PostgresConfig{Host: "db", DbName: "1ops"}, config.DatabaseDbName},
		{"bad schema", PostgresConfig{Host: "db", DbName: "eigenops", SchemaName: "a-b"}, config.DatabaseSchemaName},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validateConfig(&c.cfg)
			var cfgErr *errorTypes.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, c.field, cfgErr.Field)
		})
	}

	t.Run("accepts a valid config", func(t *testing.T) {
		assert.NoError(t, validateConfig(&PostgresConfig{Host: "db", DbName: "eigen_ops", SchemaName: "cursors"}))
	})
}
