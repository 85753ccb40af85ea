package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shophq/opscore/internal/models"
)

// InsertAttendance persists one clock-in. The (staff_id, work_date) unique
// constraint is the duplicate-day guard: a second insert for the same staff
// and day comes back as ErrDuplicate regardless of interleaving.
func InsertAttendance(ctx context.Context, database *sql.DB, rec models.AttendanceRecord) (int64, error) {
	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO attendance (staff_id, clock_in, work_date, status, penalty_amount,
		                        location_lat, location_long, selfie_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		rec.StaffID, rec.ClockIn, rec.WorkDate, rec.Status, rec.PenaltyAmount,
		rec.LocationLat, rec.LocationLong, rec.SelfieURL,
	).Scan(&id)
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

// ListAttendanceBetween returns records with clock_in in [from, to).
func ListAttendanceBetween(ctx context.Context, database *sql.DB, from, to time.Time) ([]models.AttendanceRecord, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, staff_id, clock_in, to_char(work_date, 'YYYY-MM-DD'), status, penalty_amount,
		       location_lat, location_long, selfie_url, created_at
		FROM attendance
		WHERE clock_in >= $1 AND clock_in < $2
		ORDER BY clock_in`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.StaffID, &rec.ClockIn, &rec.WorkDate, &rec.Status,
			&rec.PenaltyAmount, &rec.LocationLat, &rec.LocationLong, &rec.SelfieURL, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// CountAttendanceByStaff returns records per staff for one staff member in
// [from, to). Used by payroll helpers.
func CountAttendanceByStaff(ctx context.Context, database *sql.DB, staffID int64, from, to time.Time) (int, error) {
	var n int
	err := database.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM attendance
		WHERE staff_id = $1 AND clock_in >= $2 AND clock_in < $3`,
		staffID, from, to).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count attendance: %w", err)
	}
	return n, nil
}
