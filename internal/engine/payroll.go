package engine

import (
	"context"
	"fmt"
	"math"
	"regexp"

	"github.com/shophq/opscore/internal/ctxutil"
	"github.com/shophq/opscore/internal/db"
	"github.com/shophq/opscore/internal/models"
)

type SettlementInput struct {
	StaffID       int64
	Month         string // "YYYY-MM"
	BasicSalary   float64
	TotalPenalty  float64
	TotalBonus    float64
	FinalAmount   float64
	PaymentMethod string
	ProofURL      *string
}

var monthKeyRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// amountTolerance absorbs float formatting noise in caller-computed totals.
// NUMERIC(10,2) storage makes anything below half a sen indistinguishable.
const amountTolerance = 0.005

// SettlePayroll finalizes one month's pay for one staff member. The stored
// final amount must equal basic - penalty + bonus; a caller-supplied value
// that disagrees is rejected instead of trusted. (staff_id, month) upserts:
// settling a month twice leaves one record with the second call's values,
// status paid and a fresh paid_at. Callers needing the previous values must
// snapshot before re-settling.
func (e *Engine) SettlePayroll(ctx context.Context, p Principal, in SettlementInput) Result[models.PayrollRecord] {
	const op = "settle_payroll"
	defer e.observe(op, e.now())
	ctx = ctxutil.WithOp(ctxutil.WithPrincipalID(ctx, p.ID), op)

	if !p.Role.CanSettlePayroll() {
		return reject[models.PayrollRecord](e, op, PermissionDenied,
			"Tiada kebenaran untuk membuat bayaran gaji.", nil)
	}
	if in.StaffID <= 0 {
		return reject[models.PayrollRecord](e, op, ValidationError, "ID staff tidak sah.", nil)
	}
	if !monthKeyRe.MatchString(in.Month) {
		return reject[models.PayrollRecord](e, op, ValidationError,
			"Format bulan tidak sah, gunakan YYYY-MM.", nil)
	}
	if in.BasicSalary < 0 || in.TotalPenalty < 0 || in.TotalBonus < 0 {
		return reject[models.PayrollRecord](e, op, ValidationError,
			"Jumlah gaji, penalti dan bonus mesti positif.", nil)
	}
	if in.PaymentMethod == "" {
		return reject[models.PayrollRecord](e, op, ValidationError,
			"Kaedah bayaran diperlukan.", nil)
	}
	want := in.BasicSalary - in.TotalPenalty + in.TotalBonus
	if math.Abs(want-in.FinalAmount) > amountTolerance {
		return reject[models.PayrollRecord](e, op, ValidationError,
			fmt.Sprintf("Jumlah akhir tidak sepadan: dijangka RM%.2f.", want), nil)
	}

	now := e.now()
	rec := models.PayrollRecord{
		StaffID:       in.StaffID,
		Month:         in.Month,
		BasicSalary:   in.BasicSalary,
		TotalPenalty:  in.TotalPenalty,
		TotalBonus:    in.TotalBonus,
		FinalAmount:   want,
		PaymentMethod: in.PaymentMethod,
		ProofURL:      in.ProofURL,
		Status:        models.PayrollPaid,
		PaidAt:        &now,
	}

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	stored, err := db.UpsertPayroll(dbCtx, e.db, rec)
	if err != nil {
		return storageFail[models.PayrollRecord](e, op, "Gagal menyimpan rekod gaji.", err)
	}
	return ok(stored, fmt.Sprintf("Gaji %s berjaya dibayar. (RM%.2f)", in.Month, stored.FinalAmount))
}

// KitDeduction totals an onboarding kit so callers can fold it into the
// penalty column of a first-month settlement.
func KitDeduction(items []models.KitItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price
	}
	return sum
}
