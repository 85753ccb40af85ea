package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shophq/opscore/internal/models"
)

func InsertTask(ctx context.Context, database *sql.DB, t models.TaskRecord) (int64, error) {
	var id int64
	err := database.QueryRowContext(ctx, `
		INSERT INTO tasks (staff_id, title, is_completed, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		t.StaffID, t.Title, t.IsCompleted, orNow(t.CreatedAt),
	).Scan(&id)
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

// ListTasksBetween returns tasks created in [from, to).
func ListTasksBetween(ctx context.Context, database *sql.DB, from, to time.Time) ([]models.TaskRecord, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, staff_id, title, is_completed, created_at
		FROM tasks
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.TaskRecord
	for rows.Next() {
		var t models.TaskRecord
		if err := rows.Scan(&t.ID, &t.StaffID, &t.Title, &t.IsCompleted, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
