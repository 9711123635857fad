package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/dbx"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/migrations"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/admissions"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/attendance"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/materials"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/notices"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/profiles"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
)

// Pool holds the connection pool bounds handed to the driver.
type Pool struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type PostgresRepositoryManager struct {
	db *sql.DB
}

func (m *PostgresRepositoryManager) Conn() *sql.DB { return m.db }

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Attendance(db dbx.DBTX) attendance.Repository {
	return attendance.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Notices(db dbx.DBTX) notices.Repository {
	return notices.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Materials(db dbx.DBTX) materials.Repository {
	return materials.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Admissions(db dbx.DBTX) admissions.Repository {
	return admissions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Close()
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

// NewPostgresRepositoryManager opens the pool, waits for the database to
// accept connections (bounded exponential backoff), and applies migrations.
func NewPostgresRepositoryManager(ctx context.Context, dsn string, pool Pool) (RepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m := &PostgresRepositoryManager{db: db}

	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
