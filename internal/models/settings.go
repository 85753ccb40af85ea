package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ShopSettings is the authoritative shop configuration: attendance start time,
// the tiered late penalties and the ranking reward amounts. The table keeps a
// history of rows; the most recently updated one wins.
//
// Numeric columns arrive from the legacy schema as text, so construction goes
// through ParseShopSettings exactly once at the store boundary.
type ShopSettings struct {
	ID                   int64
	StartTime            string // "HH:MM:SS"
	LatePenaltyPerMinute float64
	Penalty15m           float64
	Penalty30m           float64
	PenaltyMax           float64
	RankingReward1       float64
	RankingReward2       float64
	RankingReward3       float64
	UpdatedAt            time.Time
}

// DefaultShopSettings are the documented fallbacks used when no settings row
// exists: 09:00 start and zero penalties. Callers must surface a warning when
// falling back, otherwise every clock-in silently costs RM0.
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		StartTime:      "09:00:00",
		RankingReward1: 100,
		RankingReward2: 50,
		RankingReward3: 25,
	}
}

// StartSeconds returns the start time as seconds since civil midnight.
func (s ShopSettings) StartSeconds() (int, error) {
	parts := strings.Split(s.StartTime, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("bad start_time %q", s.StartTime)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad start_time %q: %w", s.StartTime, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("bad start_time %q: %w", s.StartTime, err)
	}
	sec := 0
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, fmt.Errorf("bad start_time %q: %w", s.StartTime, err)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("start_time %q out of range", s.StartTime)
	}
	return h*3600 + m*60 + sec, nil
}

// RewardForRank maps leaderboard ranks 1..3 onto the configured reward tiers.
func (s ShopSettings) RewardForRank(rank int) float64 {
	switch rank {
	case 1:
		return s.RankingReward1
	case 2:
		return s.RankingReward2
	case 3:
		return s.RankingReward3
	}
	return 0
}

// ShopSettingsRow is the raw row as stored: decimals as text.
type ShopSettingsRow struct {
	ID                   int64
	StartTime            string
	LatePenaltyPerMinute string
	Penalty15m           string
	Penalty30m           string
	PenaltyMax           string
	RankingReward1       string
	RankingReward2       string
	RankingReward3       string
	UpdatedAt            time.Time
}

// ParseShopSettings coerces a raw row into typed settings. Empty strings count
// as zero; anything else must parse as a decimal.
func ParseShopSettings(row ShopSettingsRow) (ShopSettings, error) {
	out := ShopSettings{ID: row.ID, StartTime: row.StartTime, UpdatedAt: row.UpdatedAt}
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"late_penalty_per_minute", row.LatePenaltyPerMinute, &out.LatePenaltyPerMinute},
		{"penalty_15m", row.Penalty15m, &out.Penalty15m},
		{"penalty_30m", row.Penalty30m, &out.Penalty30m},
		{"penalty_max", row.PenaltyMax, &out.PenaltyMax},
		{"ranking_reward_1", row.RankingReward1, &out.RankingReward1},
		{"ranking_reward_2", row.RankingReward2, &out.RankingReward2},
		{"ranking_reward_3", row.RankingReward3, &out.RankingReward3},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(f.raw)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ShopSettings{}, fmt.Errorf("shop_settings.%s=%q: %w", f.name, f.raw, err)
		}
		*f.dst = v
	}
	if _, err := out.StartSeconds(); err != nil {
		return ShopSettings{}, err
	}
	return out, nil
}
