package engine

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shophq/opscore/internal/ctxutil"
	"github.com/shophq/opscore/internal/db"
	"github.com/shophq/opscore/internal/models"
)

// Strategy selects how a month's leaderboard is computed.
type Strategy string

const (
	// RawEventScoring recomputes scores from attendance and task records.
	// Used for ad hoc top-3 queries.
	RawEventScoring Strategy = "raw_events"
	// PrecomputedLedgerScoring reads the monthly_points ledger. Used for the
	// full leaderboard with reward amounts.
	PrecomputedLedgerScoring Strategy = "ledger"
)

// Attendance and task point values for the raw-event strategy. A record also
// loses one point per whole RM of penalty.
const (
	pointsPresent       = 10
	pointsLate          = -5
	pointsAbsent        = -10
	pointsCompletedTask = 5
	rawTopN             = 3
)

// ComputeMonthlyRankings builds the ordered performance list for a "YYYY-MM"
// month. Both strategies share the same ordering rule: score descending, then
// full name ascending, so equal scores always come back in the same order.
// Read-only: neither strategy writes anything.
func (e *Engine) ComputeMonthlyRankings(ctx context.Context, month string, strategy Strategy) Result[[]models.RankingEntry] {
	const op = "compute_monthly_rankings"
	defer e.observe(op, e.now())
	ctx = ctxutil.WithOp(ctx, op)

	from, to, err := e.monthBounds(month)
	if err != nil {
		return reject[[]models.RankingEntry](e, op, ValidationError,
			"Format bulan tidak sah, gunakan YYYY-MM.", err)
	}

	switch strategy {
	case RawEventScoring:
		return e.rawEventRankings(ctx, op, from, to)
	case PrecomputedLedgerScoring:
		return e.ledgerRankings(ctx, op, month)
	default:
		return reject[[]models.RankingEntry](e, op, ValidationError,
			"Strategi ranking tidak dikenali.", nil)
	}
}

// rawEventRankings recomputes scores for role=staff profiles from attendance
// and task records in [from, to) and returns the top 3.
func (e *Engine) rawEventRankings(ctx context.Context, op string, from, to time.Time) Result[[]models.RankingEntry] {
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	staffList, err := db.ListStaffByRole(dbCtx, e.db, models.RoleStaff)
	if err != nil {
		return storageFail[[]models.RankingEntry](e, op, "Gagal memuatkan senarai staff.", err)
	}
	attendance, err := db.ListAttendanceBetween(dbCtx, e.db, from, to)
	if err != nil {
		return storageFail[[]models.RankingEntry](e, op, "Gagal memuatkan rekod kehadiran.", err)
	}
	tasks, err := db.ListTasksBetween(dbCtx, e.db, from, to)
	if err != nil {
		return storageFail[[]models.RankingEntry](e, op, "Gagal memuatkan tugasan.", err)
	}

	entries := make([]models.RankingEntry, 0, len(staffList))
	for _, s := range staffList {
		entries = append(entries, models.RankingEntry{
			StaffID:   s.ID,
			FullName:  s.FullName,
			AvatarURL: s.AvatarURL,
			Position:  s.Position,
			Score:     rawScore(attendance, tasks, s.ID),
		})
	}
	sortRankings(entries, false)
	if len(entries) > rawTopN {
		entries = entries[:rawTopN]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return ok(entries, "")
}

// sortRankings is the single ordering rule both strategies go through.
func sortRankings(entries []models.RankingEntry, byPoints bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		av, bv := a.Score, b.Score
		if byPoints {
			av, bv = a.Points, b.Points
		}
		if av != bv {
			return av > bv
		}
		return a.FullName < b.FullName
	})
}

// rawScore applies the attendance/task arithmetic for one staff member.
func rawScore(attendance []models.AttendanceRecord, tasks []models.TaskRecord, staffID int64) int {
	score := 0
	for _, a := range attendance {
		if a.StaffID != staffID {
			continue
		}
		switch a.Status {
		case models.StatusPresent:
			score += pointsPresent
		case models.StatusLate:
			score += pointsLate
		case models.StatusAbsent:
			score += pointsAbsent
		}
		score -= int(math.Floor(a.PenaltyAmount))
	}
	for _, t := range tasks {
		if t.StaffID == staffID && t.IsCompleted {
			score += pointsCompletedTask
		}
	}
	return score
}

func (e *Engine) ledgerRankings(ctx context.Context, op, month string) Result[[]models.RankingEntry] {
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	ledger, err := db.ListMonthlyPointsWithStaff(dbCtx, e.db, month)
	if err != nil {
		return storageFail[[]models.RankingEntry](e, op, "Gagal memuatkan mata bulanan.", err)
	}

	settings, _ := e.loadSettings(ctx)

	entries := make([]models.RankingEntry, 0, len(ledger))
	for _, l := range ledger {
		entries = append(entries, models.RankingEntry{
			StaffID:   l.StaffID,
			FullName:  l.FullName,
			AvatarURL: l.AvatarURL,
			Position:  l.Position,
			Points:    l.Points,
			GoodDeeds: l.GoodDeeds,
			BadDeeds:  l.BadDeeds,
		})
	}
	sortRankings(entries, true)
	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].Reward = settings.RewardForRank(i + 1)
	}
	return ok(entries, "")
}
