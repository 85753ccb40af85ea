package jobs

import (
	"context"
	"database/sql"
	"time"

	"github.com/shophq/opscore/internal/db"
	"github.com/shophq/opscore/internal/metrics"
	"go.uber.org/zap"
)

// LedgerAudit builds a job that checks the current month's points ledger for
// rows where points drifted from good_deeds_count - bad_deeds_count. The
// ledger is also written by external processes, so drift is logged for an
// operator rather than corrected automatically.
func LedgerAudit(database *sql.DB, log *zap.Logger, loc *time.Location) Job {
	return func(ctx context.Context) error {
		month := time.Now().In(loc).Format("2006-01")
		ids, err := db.ListLedgerViolations(ctx, database, month)
		if err != nil {
			return err
		}
		if len(ids) > 0 {
			log.Warn("monthly points ledger drift",
				zap.String("month", month), zap.Int64s("staff_ids", ids))
		}
		return nil
	}
}

// DBPing builds a job that keeps the db ping latency histogram warm between
// health checks.
func DBPing(database *sql.DB) Job {
	return func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		t0 := time.Now()
		if err := database.PingContext(pingCtx); err != nil {
			return err
		}
		metrics.ObserveDBPing(time.Since(t0))
		return nil
	}
}
