// Package engine implements the attendance, scoring and payroll computation
// core: penalty calculation, clock-in recording, monthly rankings, payroll
// settlement and the operational data reset. Everything here is request-scoped
// and synchronous; persistence invariants (duplicate days, payroll upserts)
// live in the schema's unique constraints, not in application pre-checks.
package engine

import (
	"database/sql"
	"time"

	"github.com/shophq/opscore/internal/metrics"
	"github.com/shophq/opscore/internal/models"
	"go.uber.org/zap"
)

// Principal is the already-verified identity an operation runs as. There is no
// ambient privileged client: every call site passes the principal explicitly,
// so every write is traceable to an authorization check.
type Principal struct {
	ID   int64
	Role models.Role
}

type Engine struct {
	db  *sql.DB
	log *zap.Logger
	loc *time.Location
	now func() time.Time
}

func New(database *sql.DB, log *zap.Logger, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{db: database, log: log, loc: loc, now: time.Now}
}

// observe records one finished operation. Meant for defer with the start
// instant captured at entry.
func (e *Engine) observe(op string, start time.Time) {
	metrics.EngineOps.WithLabelValues(op).Inc()
	metrics.EngineOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// monthBounds returns [first instant, first instant of next month) for a
// "YYYY-MM" key in the shop timezone.
func (e *Engine) monthBounds(month string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01", month, e.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return t, t.AddDate(0, 1, 0), nil
}
