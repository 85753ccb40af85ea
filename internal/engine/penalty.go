package engine

import (
	"strings"
	"time"

	"github.com/shophq/opscore/internal/models"
)

// PenaltyResult is what the calculator hands back. Degraded marks the
// timezone/start-time fallback: nominally a success so the caller's flow is
// not broken, but distinguishable so it can be logged and counted.
type PenaltyResult struct {
	Status   string
	Penalty  float64
	Degraded bool
}

// CalculatePenalty computes status and penalty for one clock-in against the
// shop settings. Pure and deterministic: the comparison happens on wall-clock
// seconds in loc (the shop's civil timezone), never the process timezone.
//
// Tier order is fixed, each tier active only when configured above zero:
// >30 min → penalty_max, >15 min → penalty_30m, >0 min → penalty_15m,
// otherwise minutes late × per-minute rate.
func CalculatePenalty(clockIn time.Time, s models.ShopSettings, loc *time.Location) PenaltyResult {
	if loc == nil {
		return PenaltyResult{Status: models.StatusLate, Penalty: 0, Degraded: true}
	}
	startSeconds, err := s.StartSeconds()
	if err != nil {
		return PenaltyResult{Status: models.StatusLate, Penalty: 0, Degraded: true}
	}

	local := clockIn.In(loc)
	clockSeconds := local.Hour()*3600 + local.Minute()*60 + local.Second()

	diffSeconds := clockSeconds - startSeconds
	if diffSeconds <= 0 {
		return PenaltyResult{Status: models.StatusPresent, Penalty: 0}
	}

	diffMinutes := diffSeconds / 60

	var penalty float64
	switch {
	case s.PenaltyMax > 0 && diffMinutes > 30:
		penalty = s.PenaltyMax
	case s.Penalty30m > 0 && diffMinutes > 15:
		penalty = s.Penalty30m
	case s.Penalty15m > 0 && diffMinutes > 0:
		penalty = s.Penalty15m
	default:
		penalty = float64(diffMinutes) * s.LatePenaltyPerMinute
	}
	return PenaltyResult{Status: models.StatusLate, Penalty: penalty}
}

// NormalizeStatus maps the Malay synonyms the legacy clients still send onto
// the canonical values. Unrecognized input passes through lower-cased and is
// left for the schema CHECK constraint to reject. Idempotent.
func NormalizeStatus(status string) string {
	if status == "" {
		return models.StatusPresent
	}
	switch strings.ToLower(status) {
	case "late", "lewat":
		return models.StatusLate
	case "present", "hadir":
		return models.StatusPresent
	case "absent", "ponteng":
		return models.StatusAbsent
	default:
		return strings.ToLower(status)
	}
}
