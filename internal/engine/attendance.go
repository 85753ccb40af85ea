package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shophq/opscore/internal/ctxutil"
	"github.com/shophq/opscore/internal/db"
	"github.com/shophq/opscore/internal/metrics"
	"github.com/shophq/opscore/internal/models"
	"github.com/shophq/opscore/internal/observability"
	"go.uber.org/zap"
)

type ManualAttendanceInput struct {
	StaffID        int64
	ClockIn        time.Time
	OverrideStatus string // optional; wins over the calculated status
	SelfieURL      *string
}

type AttendanceData struct {
	RecordID int64
	Status   string
	Penalty  float64
}

// RecordManualAttendance creates one attendance record on behalf of staffID.
// Only admin, manager, master and supervisor principals may call it. The
// duplicate-day guard is the (staff_id, work_date) unique constraint; a
// violation surfaces as DuplicateRecord, never as an opaque storage fault.
//
// When a status override is supplied it replaces the calculated status, but
// the calculated penalty is persisted either way.
func (e *Engine) RecordManualAttendance(ctx context.Context, p Principal, in ManualAttendanceInput) Result[AttendanceData] {
	const op = "record_manual_attendance"
	defer e.observe(op, e.now())
	ctx = ctxutil.WithOp(ctxutil.WithPrincipalID(ctx, p.ID), op)

	if !p.Role.CanRecordAttendance() {
		return reject[AttendanceData](e, op, PermissionDenied,
			"Tiada kebenaran untuk mencipta rekod kehadiran.", nil)
	}
	if in.StaffID <= 0 {
		return reject[AttendanceData](e, op, ValidationError, "ID staff tidak sah.", nil)
	}
	if in.ClockIn.IsZero() {
		return reject[AttendanceData](e, op, ValidationError, "Masa clock-in diperlukan.", nil)
	}

	settings, warn := e.loadSettings(ctx)

	calc := CalculatePenalty(in.ClockIn, settings, e.loc)
	if calc.Degraded {
		metrics.PenaltyDegraded.Inc()
		e.log.Warn("penalty calculation degraded to late/0",
			zap.Int64("staff_id", in.StaffID), zap.Time("clock_in", in.ClockIn))
	}

	status := NormalizeStatus(calc.Status)
	if in.OverrideStatus != "" {
		status = NormalizeStatus(in.OverrideStatus)
	}

	rec := models.AttendanceRecord{
		StaffID:       in.StaffID,
		ClockIn:       in.ClockIn,
		WorkDate:      in.ClockIn.In(e.loc).Format("2006-01-02"),
		Status:        status,
		PenaltyAmount: calc.Penalty,
		SelfieURL:     in.SelfieURL,
		// geolocation stays null: manual entries have no device fix
	}

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	id, err := db.InsertAttendance(dbCtx, e.db, rec)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return reject[AttendanceData](e, op, DuplicateRecord,
				"Staff ini sudah mempunyai rekod kehadiran untuk tarikh tersebut.", err)
		}
		if errors.Is(err, db.ErrConstraint) {
			return reject[AttendanceData](e, op, ValidationError,
				fmt.Sprintf("Status %q tidak sah.", status), err)
		}
		return storageFail[AttendanceData](e, op, "Gagal menyimpan rekod kehadiran.", err)
	}

	msg := fmt.Sprintf("Kehadiran berjaya direkodkan. (%s, RM%.2f)", status, calc.Penalty)
	if warn != "" {
		msg += " " + warn
	}
	return ok(AttendanceData{RecordID: id, Status: status, Penalty: calc.Penalty}, msg)
}

// loadSettings resolves the authoritative settings row, falling back to the
// documented defaults (09:00 start, zero penalties) when none exists. The
// fallback silently zeroes every penalty, so it is logged, counted and echoed
// in the result message rather than passing for a normal read.
func (e *Engine) loadSettings(ctx context.Context) (models.ShopSettings, string) {
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	settings, err := db.LatestShopSettings(dbCtx, e.db)
	if err == nil {
		return settings, ""
	}
	if errors.Is(err, db.ErrNotFound) {
		metrics.SettingsFallback.Inc()
		e.log.Warn("shop settings missing, using defaults (RM0 penalties)")
		return models.DefaultShopSettings(), "Amaran: tetapan kedai tiada, penalti dikira RM0."
	}
	// A broken settings row is treated like an absent one, but it is an error.
	metrics.SettingsFallback.Inc()
	e.log.Error("shop settings unreadable, using defaults", zap.Error(err))
	observability.CaptureErr(err)
	return models.DefaultShopSettings(), "Amaran: tetapan kedai tidak dapat dibaca, penalti dikira RM0."
}
