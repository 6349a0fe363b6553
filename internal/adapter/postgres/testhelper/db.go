// Package testhelper provides a shared PostgreSQL test database and seed
// helpers for repository integration tests.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/pebbl-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pebbl-backend/internal/adapter/postgres/migrations"
)

// Environment overrides. PEBBL_TEST_DATABASE_URL points the tests at an
// existing database instead of starting a container.
const (
	envDSN   = "PEBBL_TEST_DATABASE_URL"
	envImage = "PEBBL_TEST_PG_IMAGE"
)

type pgContainer struct {
	image, user, password, db string
}

var defaultContainer = pgContainer{
	image:    "postgres:17-alpine",
	user:     "pebbl",
	password: "pebbl",
	db:       "pebbl_test",
}

var shared struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool on a migrated database shared by the whole
// test binary. The pool closes with the test. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("postgres integration test skipped in -short mode")
	}

	shared.once.Do(func() {
		shared.dsn, shared.err = provision(context.Background())
	})
	if shared.err != nil {
		t.Fatalf("testhelper: %v", shared.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, shared.dsn)
	if err != nil {
		t.Fatalf("testhelper: pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func provision(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(envDSN)
	if dsn == "" {
		pg := defaultContainer
		if img := os.Getenv(envImage); img != "" {
			pg.image = img
		}
		var err error
		if dsn, err = pg.start(ctx); err != nil {
			return "", err
		}
	}

	if err := migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func (c pgContainer) start(ctx context.Context) (string, error) {
	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        c.image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     c.user,
				"POSTGRES_PASSWORD": c.password,
				"POSTGRES_DB":       c.db,
			},
			// postgres logs readiness once for the init server and once for the real one.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", c.image, err)
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := ctr.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.user, c.password, host, port.Port(), c.db), nil
}

// migrate applies the embedded goose migrations through database/sql.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return postgres.MigrateDB(ctx, db, migrations.FS, nil)
}
