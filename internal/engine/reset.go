package engine

import (
	"context"
	"fmt"

	"github.com/shophq/opscore/internal/ctxutil"
	"github.com/shophq/opscore/internal/db"
	"go.uber.org/zap"
)

// ResetSummary reports what one reset run removed.
type ResetSummary struct {
	DeletedByTable map[string]int64
	TotalDeleted   int64
}

// ResetOperationalData wipes attendance, tasks, payroll, applications and
// notifications and empties every non-master onboarding kit, for test-cycle
// resets. The whole wipe runs in one serializable transaction: a failure in
// any step rolls back all of it, so the system is never left half-wiped.
func (e *Engine) ResetOperationalData(ctx context.Context, p Principal) Result[ResetSummary] {
	const op = "reset_operational_data"
	defer e.observe(op, e.now())
	ctx = ctxutil.WithOp(ctxutil.WithPrincipalID(ctx, p.ID), op)

	if !p.Role.CanResetData() {
		return reject[ResetSummary](e, op, PermissionDenied,
			"Tiada kebenaran untuk menetapkan semula data.", nil)
	}

	// A full wipe can outlive the standard store timeout on big datasets.
	dbCtx, cancel := ctxutil.WithTimeout(ctx, 4*ctxutil.DefaultDBTimeout)
	defer cancel()

	deleted, err := db.ResetOperationalData(dbCtx, e.db)
	if err != nil {
		return storageFail[ResetSummary](e, op, "Gagal menetapkan semula data operasi.", err)
	}

	var total int64
	for _, n := range deleted {
		total += n
	}
	e.log.Info("operational data reset",
		zap.Int64("principal_id", p.ID), zap.Int64("rows_deleted", total))
	return ok(ResetSummary{DeletedByTable: deleted, TotalDeleted: total},
		fmt.Sprintf("Data operasi berjaya dipadam. (%d rekod)", total))
}
