package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shophq/opscore/internal/models"
)

// GetStaffByID loads one profile. ErrNotFound when missing.
func GetStaffByID(ctx context.Context, database *sql.DB, id int64) (*models.StaffProfile, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, full_name, role, position, base_salary, onboarding_kit, avatar_url, is_active, created_at
		FROM staff
		WHERE id = $1`, id)
	s, err := scanStaff(row)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

// ListStaffByRole returns active profiles with the given role, name-ascending
// so downstream orderings stay reproducible.
func ListStaffByRole(ctx context.Context, database *sql.DB, role models.Role) ([]models.StaffProfile, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, full_name, role, position, base_salary, onboarding_kit, avatar_url, is_active, created_at
		FROM staff
		WHERE role = $1 AND is_active
		ORDER BY full_name`, string(role))
	if err != nil {
		return nil, fmt.Errorf("list staff by role: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.StaffProfile
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// InsertStaff creates a profile and returns its id. Used by seeds and tests.
func InsertStaff(ctx context.Context, database *sql.DB, s models.StaffProfile) (int64, error) {
	kit, err := json.Marshal(s.OnboardingKit)
	if err != nil {
		return 0, fmt.Errorf("marshal onboarding kit: %w", err)
	}
	if len(s.OnboardingKit) == 0 {
		kit = []byte("[]")
	}
	var id int64
	err = database.QueryRowContext(ctx, `
		INSERT INTO staff (full_name, role, position, base_salary, onboarding_kit, avatar_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id`,
		s.FullName, string(s.Role), s.Position, s.BaseSalary, kit, s.AvatarURL,
	).Scan(&id)
	if err != nil {
		return 0, translate(err)
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStaff(r rowScanner) (*models.StaffProfile, error) {
	var s models.StaffProfile
	var role string
	var kit []byte
	if err := r.Scan(&s.ID, &s.FullName, &role, &s.Position, &s.BaseSalary, &kit,
		&s.AvatarURL, &s.IsActive, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Role = models.Role(role)
	if len(kit) > 0 {
		if err := json.Unmarshal(kit, &s.OnboardingKit); err != nil {
			return nil, fmt.Errorf("onboarding kit for staff %d: %w", s.ID, err)
		}
	}
	return &s, nil
}
