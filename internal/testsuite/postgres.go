// Package testsuite runs repository tests against a throwaway Postgres
// container with the project migrations applied.
package testsuite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/joefazee/qrmenu/app/database"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

const (
	postgresImage = "postgres:17.5-alpine3.21"
	dbName        = "menu_test"
	dbUser        = "menu"
	dbPassword    = "menu"
)

type PostgresContainer struct {
	testcontainers.Container
	DSN string
}

// StartPostgres boots a postgres container and waits until it answers queries.
func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	const port = "5432/tcp"

	dsn := func(host string, p nat.Port) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, host, p.Port(), dbName)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{port},
			Cmd:          []string{"postgres", "-c", "fsync=off"},
			Env: map[string]string{
				"POSTGRES_DB":       dbName,
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPassword,
			},
			WaitingFor: wait.ForSQL(port, "postgres", dsn).
				WithStartupTimeout(30 * time.Second).
				WithQuery("SELECT 1"),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn(host, mapped)}, nil
}

// PostgresSuite is embedded by integration suites that need a migrated database.
type PostgresSuite struct {
	suite.Suite
	Container      *PostgresContainer
	DB             *gorm.DB
	SQLDB          *sql.DB
	MigrationsPath string
}

func (s *PostgresSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping postgres integration tests in short mode")
	}

	ctx := context.Background()
	container, err := StartPostgres(ctx)
	if err != nil {
		s.T().Fatalf("start postgres: %v", err)
	}
	s.Container = container
	s.T().Cleanup(func() {
		if s.SQLDB != nil {
			_ = s.SQLDB.Close()
		}
		_ = container.Terminate(context.Background())
	})

	if s.MigrationsPath == "" {
		s.MigrationsPath = FindMigrations()
	}
	if err := database.Migrate(s.MigrationsPath, container.DSN); err != nil {
		s.T().Fatalf("migrate: %v", err)
	}

	sqlDB, err := sql.Open("postgres", container.DSN)
	if err != nil {
		s.T().Fatalf("open sql connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	s.SQLDB = sqlDB

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		s.T().Fatalf("open gorm connection: %v", err)
	}
	s.DB = gormDB
}

// SetupTest empties every application table so tests start from a clean store.
func (s *PostgresSuite) SetupTest() {
	var tables []string
	s.DB.Raw(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_type = 'BASE TABLE'
		AND table_name <> 'schema_migrations'
	`).Scan(&tables)

	for _, table := range tables {
		s.DB.Exec(fmt.Sprintf(`DELETE FROM %q`, table))
	}
}

func (s *PostgresSuite) CountRows(table string) int64 {
	var c int64
	s.DB.Table(table).Count(&c)
	return c
}

// FindMigrations walks up from the working directory to the module root.
func FindMigrations() string {
	wd, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "migrations")
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return ""
		}
		wd = parent
	}
}
