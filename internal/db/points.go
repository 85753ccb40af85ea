package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shophq/opscore/internal/models"
)

// LedgerEntry is a monthly_points row joined with profile fields, the shape
// the ledger ranking strategy consumes.
type LedgerEntry struct {
	StaffID   int64
	FullName  string
	AvatarURL *string
	Position  *string
	Points    int
	GoodDeeds int
	BadDeeds  int
}

// ListMonthlyPointsWithStaff returns the ledger for one "YYYY-MM" month joined
// with staff profiles, points-descending with name as the stable second key.
func ListMonthlyPointsWithStaff(ctx context.Context, database *sql.DB, month string) ([]LedgerEntry, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT mp.staff_id, s.full_name, s.avatar_url, s.position,
		       mp.points, mp.good_deeds_count, mp.bad_deeds_count
		FROM monthly_points mp
		JOIN staff s ON s.id = mp.staff_id
		WHERE mp.month = $1
		ORDER BY mp.points DESC, s.full_name`, month)
	if err != nil {
		return nil, fmt.Errorf("list monthly points: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []LedgerEntry
	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.StaffID, &e.FullName, &e.AvatarURL, &e.Position,
			&e.Points, &e.GoodDeeds, &e.BadDeeds); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// IncrementDeed adjusts the ledger for one deed: +1 point and +1 good count,
// or -1 point and +1 bad count. The insert-or-update is a single statement, so
// concurrent awards for the same (staff, month) cannot lose increments.
func IncrementDeed(ctx context.Context, database *sql.DB, staffID int64, month string, good bool) error {
	delta, goodInc, badInc := 1, 1, 0
	if !good {
		delta, goodInc, badInc = -1, 0, 1
	}
	_, err := database.ExecContext(ctx, `
		INSERT INTO monthly_points (staff_id, month, points, good_deeds_count, bad_deeds_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (staff_id, month) DO UPDATE SET
			points = monthly_points.points + $3,
			good_deeds_count = monthly_points.good_deeds_count + $4,
			bad_deeds_count = monthly_points.bad_deeds_count + $5,
			updated_at = now()`,
		staffID, month, delta, goodInc, badInc)
	if err != nil {
		return fmt.Errorf("increment deed: %w", err)
	}
	return nil
}

// ListLedgerViolations returns staff ids whose ledger row for the month
// breaks the deed invariant points == good_deeds_count - bad_deeds_count.
// Deed awards preserve it; drift means an external writer bypassed them.
func ListLedgerViolations(ctx context.Context, database *sql.DB, month string) ([]int64, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT staff_id FROM monthly_points
		WHERE month = $1 AND points <> good_deeds_count - bad_deeds_count
		ORDER BY staff_id`, month)
	if err != nil {
		return nil, fmt.Errorf("list ledger violations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// UpsertMonthlyPoints replaces the ledger row for (staff, month) wholesale.
// Meant for external maintainers of the ledger and for seeds; in-process deed
// awards go through IncrementDeed.
func UpsertMonthlyPoints(ctx context.Context, database *sql.DB, p models.MonthlyPoints) error {
	_, err := database.ExecContext(ctx, `
		INSERT INTO monthly_points (staff_id, month, points, good_deeds_count, bad_deeds_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (staff_id, month) DO UPDATE SET
			points = EXCLUDED.points,
			good_deeds_count = EXCLUDED.good_deeds_count,
			bad_deeds_count = EXCLUDED.bad_deeds_count,
			updated_at = EXCLUDED.updated_at`,
		p.StaffID, p.Month, p.Points, p.GoodDeedsCount, p.BadDeedsCount, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert monthly points: %w", err)
	}
	return nil
}
