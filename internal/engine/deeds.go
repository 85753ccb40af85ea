package engine

import (
	"context"

	"github.com/shophq/opscore/internal/ctxutil"
	"github.com/shophq/opscore/internal/db"
)

// AwardGoodDeed adds one good deed (+1 point) to the staff member's ledger
// for the month, creating the row if needed. The increment is a single
// insert-or-update statement, so concurrent awards cannot be lost.
func (e *Engine) AwardGoodDeed(ctx context.Context, p Principal, staffID int64, month string) Result[struct{}] {
	return e.recordDeed(ctx, p, staffID, month, true)
}

// DeductBadDeed records one bad deed (-1 point). Same atomicity as awards.
func (e *Engine) DeductBadDeed(ctx context.Context, p Principal, staffID int64, month string) Result[struct{}] {
	return e.recordDeed(ctx, p, staffID, month, false)
}

func (e *Engine) recordDeed(ctx context.Context, p Principal, staffID int64, month string, good bool) Result[struct{}] {
	op := "deduct_bad_deed"
	if good {
		op = "award_good_deed"
	}
	defer e.observe(op, e.now())
	ctx = ctxutil.WithOp(ctxutil.WithPrincipalID(ctx, p.ID), op)

	if !p.Role.CanRecordAttendance() {
		return reject[struct{}](e, op, PermissionDenied,
			"Tiada kebenaran untuk mengemaskini mata staff.", nil)
	}
	if staffID <= 0 {
		return reject[struct{}](e, op, ValidationError, "ID staff tidak sah.", nil)
	}
	if !monthKeyRe.MatchString(month) {
		return reject[struct{}](e, op, ValidationError,
			"Format bulan tidak sah, gunakan YYYY-MM.", nil)
	}

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	if err := db.IncrementDeed(dbCtx, e.db, staffID, month, good); err != nil {
		return storageFail[struct{}](e, op, "Gagal mengemaskini mata staff.", err)
	}
	return ok(struct{}{}, "Mata staff dikemaskini.")
}
