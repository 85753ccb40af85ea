package db

import (
	"context"
	"database/sql"
	"fmt"
)

// resetOrder lists the wiped tables dependents-first. Attendance and payroll
// go last so a foreign-key failure in a dependent table aborts before the
// parents are touched.
var resetOrder = []string{
	"notifications",
	"broadcast_notifications",
	"advance_requests",
	"leave_applications",
	"tasks",
	"payroll",
	"attendance",
}

// ResetOperationalData wipes every operational table and empties the
// onboarding kit for all non-master staff, all inside one transaction. Either
// everything is deleted or nothing is; concurrent readers never observe a
// half-wiped state.
func ResetOperationalData(ctx context.Context, database *sql.DB) (map[string]int64, error) {
	tx, err := database.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("begin reset tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleted := make(map[string]int64, len(resetOrder))
	for _, table := range resetOrder {
		res, err := tx.ExecContext(ctx, "DELETE FROM "+table)
		if err != nil {
			return nil, fmt.Errorf("wipe %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		deleted[table] = n
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE staff SET onboarding_kit = '[]'::jsonb
		WHERE role <> 'master'`); err != nil {
		return nil, fmt.Errorf("reset onboarding kits: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reset tx: %w", err)
	}
	return deleted, nil
}
