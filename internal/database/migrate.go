package database

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrator applies the embedded SQL migrations.
type Migrator struct {
	m *migrate.Migrate
}

func NewMigrator(connStr string) (*Migrator, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("opening migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrationURL(connStr))
	if err != nil {
		return nil, fmt.Errorf("creating migrator: %w", err)
	}

	return &Migrator{m: m}, nil
}

// migrationURL rewrites a postgres:// DSN to the pgx/v5 driver scheme.
func migrationURL(connStr string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(connStr, prefix); ok {
			return "pgx5://" + rest
		}
	}

	return connStr
}

func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrating up: %w", err)
	}

	return nil
}

// Down rolls back the given number of migrations; steps <= 0 rolls back all.
func (m *Migrator) Down(steps int) error {
	var err error
	if steps <= 0 {
		err = m.m.Down()
	} else {
		err = m.m.Steps(-steps)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrating down: %w", err)
	}

	return nil
}

// Version returns the current schema version. A database without any
// applied migration reports version 0.
func (m *Migrator) Version() (uint, bool, error) {
	v, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("reading version: %w", err)
	}

	return v, dirty, nil
}

func (m *Migrator) Force(version int) error {
	if err := m.m.Force(version); err != nil {
		return fmt.Errorf("forcing version %d: %w", version, err)
	}

	return nil
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()

	return errors.Join(srcErr, dbErr)
}
