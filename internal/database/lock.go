package database

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
)

// LockKey hashes parts into a key for pg_advisory_xact_lock. Callers prefix
// the parts with a scope name so unrelated locks do not collide.
func LockKey(parts ...string) int64 {
	h := fnv.New64a()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}

		h.Write([]byte(p))
	}

	return int64(h.Sum64())
}

// AdvisoryLock blocks until the transaction holds the lock for key. The lock
// is released on commit or rollback.
func AdvisoryLock(ctx context.Context, tx *sql.Tx, key int64) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
		return fmt.Errorf("acquiring advisory lock: %w", err)
	}

	return nil
}
