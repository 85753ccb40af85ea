package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shophq/opscore/internal/models"
)

// UpsertPayroll settles one (staff, month). The unique constraint resolves the
// conflict: a re-settlement overwrites amounts, method, proof, status and
// paid_at in place. Returns the stored row.
func UpsertPayroll(ctx context.Context, database *sql.DB, rec models.PayrollRecord) (models.PayrollRecord, error) {
	row := database.QueryRowContext(ctx, `
		INSERT INTO payroll (staff_id, month, basic_salary, total_penalty, total_bonus,
		                     final_amount, payment_method, proof_url, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (staff_id, month) DO UPDATE SET
			basic_salary   = EXCLUDED.basic_salary,
			total_penalty  = EXCLUDED.total_penalty,
			total_bonus    = EXCLUDED.total_bonus,
			final_amount   = EXCLUDED.final_amount,
			payment_method = EXCLUDED.payment_method,
			proof_url      = EXCLUDED.proof_url,
			status         = EXCLUDED.status,
			paid_at        = EXCLUDED.paid_at
		RETURNING id, staff_id, month, basic_salary, total_penalty, total_bonus,
		          final_amount, payment_method, proof_url, status, paid_at`,
		rec.StaffID, rec.Month, rec.BasicSalary, rec.TotalPenalty, rec.TotalBonus,
		rec.FinalAmount, rec.PaymentMethod, rec.ProofURL, rec.Status, rec.PaidAt)

	var out models.PayrollRecord
	err := row.Scan(&out.ID, &out.StaffID, &out.Month, &out.BasicSalary, &out.TotalPenalty,
		&out.TotalBonus, &out.FinalAmount, &out.PaymentMethod, &out.ProofURL, &out.Status, &out.PaidAt)
	if err != nil {
		return models.PayrollRecord{}, translate(err)
	}
	return out, nil
}

// GetPayroll loads the record for (staff, month). ErrNotFound when absent.
func GetPayroll(ctx context.Context, database *sql.DB, staffID int64, month string) (*models.PayrollRecord, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, staff_id, month, basic_salary, total_penalty, total_bonus,
		       final_amount, payment_method, proof_url, status, paid_at
		FROM payroll
		WHERE staff_id = $1 AND month = $2`, staffID, month)

	var out models.PayrollRecord
	err := row.Scan(&out.ID, &out.StaffID, &out.Month, &out.BasicSalary, &out.TotalPenalty,
		&out.TotalBonus, &out.FinalAmount, &out.PaymentMethod, &out.ProofURL, &out.Status, &out.PaidAt)
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// ListPayrollForMonth returns all settled rows for a month joined with names,
// for the export workbook.
func ListPayrollForMonth(ctx context.Context, database *sql.DB, month string) ([]PayrollWithName, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT p.id, p.staff_id, s.full_name, p.month, p.basic_salary, p.total_penalty,
		       p.total_bonus, p.final_amount, p.payment_method, p.status, p.paid_at
		FROM payroll p
		JOIN staff s ON s.id = p.staff_id
		WHERE p.month = $1
		ORDER BY s.full_name`, month)
	if err != nil {
		return nil, fmt.Errorf("list payroll: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []PayrollWithName
	for rows.Next() {
		var p PayrollWithName
		if err := rows.Scan(&p.ID, &p.StaffID, &p.FullName, &p.Month, &p.BasicSalary,
			&p.TotalPenalty, &p.TotalBonus, &p.FinalAmount, &p.PaymentMethod, &p.Status, &p.PaidAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type PayrollWithName struct {
	models.PayrollRecord
	FullName string
}
