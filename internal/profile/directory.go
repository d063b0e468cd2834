package profile

import (
	"context"
	"fmt"

	"classmate/internal/database"
)

// Directory answers existence queries against the role partitions
type Directory interface {
	// Exists reports whether the given account id has a profile document in
	// the named partition. An error means the partition could not be checked,
	// which is distinct from "not found".
	Exists(ctx context.Context, partition, accountID string) (bool, error)
}

// partitionTables whitelists the queryable partitions. Partition names come
// from ProbeOrder, never from user input, but the whitelist keeps table names
// out of string interpolation entirely.
var partitionTables = map[string]string{
	"admins":   "admins",
	"teachers": "teachers",
	"students": "students",
}

type directory struct {
	db database.Service
}

// NewDirectory creates a Postgres-backed partition directory
func NewDirectory(db database.Service) Directory {
	return &directory{db: db}
}

func (d *directory) Exists(ctx context.Context, partition, accountID string) (bool, error) {
	table, ok := partitionTables[partition]
	if !ok {
		return false, fmt.Errorf("unknown profile partition: %s", partition)
	}

	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE account_id = $1)`, table)

	var exists bool
	if err := d.db.QueryRow(ctx, query, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s partition: %w", partition, err)
	}

	return exists, nil
}
