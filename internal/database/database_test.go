package database

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_UpAndDownArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}

	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations: %s", name)
		}
	}

	assert.Equal(t, ups, downs)
}

func TestMigrationURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/estate?sslmode=disable", "pgx5://u:p@localhost:5432/estate?sslmode=disable"},
		{"postgresql://u@db/estate", "pgx5://u@db/estate"},
		{"pgx5://already", "pgx5://already"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migrationURL(tt.in))
	}
}

func TestConstraintErrors(t *testing.T) {
	unique := fmt.Errorf("creating resident: %w", &pgconn.PgError{Code: "23505", ConstraintName: "residents_email_key"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.Equal(t, "residents_email_key", ConstraintName(unique))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("other")))
	assert.Empty(t, ConstraintName(errors.New("other")))
}

func TestLockKey_SeparatesParts(t *testing.T) {
	assert.Equal(t, LockKey("apartment", "1"), LockKey("apartment", "1"))
	assert.NotEqual(t, LockKey("ab", "c"), LockKey("a", "bc"))
	assert.NotEqual(t, LockKey("apartment", "1"), LockKey("resident", "1"))
}
