// Package postgres opens the database that backs the postgres cursor store.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Layr-Labs/eigenops/internal/config"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultPort    = 5432
	defaultSSLMode = "disable"

	// cursor writes are one row per poll tick
	maxOpenConns = 4
	maxIdleConns = 2
	pingTimeout  = 10 * time.Second
)

var validSSLModes = []string{"disable", "require", "verify-ca", "verify-full"}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type PostgresConfig struct {
	Host                string
	Port                int
	Username            string
	Password            string
	DbName              string
	CreateDbIfNotExists bool
	SchemaName          string
	SSLMode             string
}

type Postgres struct {
	Db *sql.DB
}

func PostgresConfigFromDbConfig(dbCfg *config.DatabaseConfig) *PostgresConfig {
	return &PostgresConfig{
		Host:       dbCfg.Host,
		Port:       dbCfg.Port,
		Username:   dbCfg.User,
		Password:   dbCfg.Password,
		DbName:     dbCfg.DbName,
		SchemaName: dbCfg.SchemaName,
	}
}

// connectionString renders a lib/pq key/value DSN. Empty credentials are left out.
func connectionString(cfg *PostgresConfig, dbName string) (string, error) {
	sslMode := defaultSSLMode
	if cfg.SSLMode != "" {
		if !slices.Contains(validSSLModes, cfg.SSLMode) {
			return "", errorTypes.NewConfigurationError("database.ssl_mode", "invalid ssl mode: %s. Must be one of: %s", cfg.SSLMode, strings.Join(validSSLModes, ", "))
		}
		sslMode = cfg.SSLMode
	}
	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}

	parts := []string{fmt.Sprintf("host=%s", cfg.Host)}
	if cfg.Username != "" {
		parts = append(parts, fmt.Sprintf("user=%s", cfg.Username))
	}
	if cfg.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", cfg.Password))
	}
	parts = append(parts,
		fmt.Sprintf("dbname=%s", dbName),
		fmt.Sprintf("port=%d", port),
		fmt.Sprintf("sslmode=%s", sslMode),
		"TimeZone=UTC",
	)
	if cfg.SchemaName != "" {
		parts = append(parts, fmt.Sprintf("search_path=%s", cfg.SchemaName))
	}
	return strings.Join(parts, " "), nil
}

func validateConfig(cfg *PostgresConfig) error {
	if cfg.Host == "" {
		return errorTypes.NewConfigurationError(config.DatabaseHost, "database host is required")
	}
	if !identifierPattern.MatchString(cfg.DbName) {
		return errorTypes.NewConfigurationError(config.DatabaseDbName, "invalid database name '%s'", cfg.DbName)
	}
	if cfg.SchemaName != "" && !identifierPattern.MatchString(cfg.SchemaName) {
		return errorTypes.NewConfigurationError(config.DatabaseSchemaName, "invalid schema name '%s'", cfg.SchemaName)
	}
	return nil
}

// CreateDatabaseIfNotExists connects to the maintenance database and creates cfg.DbName when missing.
func CreateDatabaseIfNotExists(ctx context.Context, cfg *PostgresConfig, l *zap.Logger) error {
	dsn, err := connectionString(cfg, "postgres")
	if err != nil {
		return err
	}
	root, err := sql.Open("postgres", dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open maintenance database")
	}
	defer root.Close()

	var exists bool
	if err := root.QueryRowContext(ctx, `SELECT EXISTS(SELECT datname FROM pg_catalog.pg_database WHERE datname = $1)`, cfg.DbName).Scan(&exists); err != nil {
		return errors.Wrap(err, "failed to check for database")
	}
	if exists {
		return nil
	}
	if _, err := root.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(cfg.DbName)); err != nil {
		return errors.Wrap(err, "failed to create database")
	}
	l.Sugar().Infow("Created cursor database", zap.String("dbName", cfg.DbName))
	return nil
}

// NewPostgres opens and pings the configured database, creating it first when asked to.
func NewPostgres(cfg *PostgresConfig, l *zap.Logger) (*Postgres, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if cfg.CreateDbIfNotExists {
		if err := CreateDatabaseIfNotExists(ctx, cfg, l); err != nil {
			return nil, err
		}
	}
	dsn, err := connectionString(cfg, cfg.DbName)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		l.Sugar().Errorw("NewPostgres - ping failed", zap.String("host", cfg.Host), zap.Error(err))
		return nil, errors.Wrap(err, "failed to reach database")
	}
	return &Postgres{Db: db}, nil
}

func NewGormFromPostgresConnection(pgDb *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: pgDb,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open gorm")
	}
	return db, nil
}
