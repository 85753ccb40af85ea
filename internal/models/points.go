package models

import "time"

// MonthlyPoints is the precomputed per-staff ledger for one "YYYY-MM" month.
// Deed awards and external writers maintain it; the ranking aggregator only
// reads it.
type MonthlyPoints struct {
	ID             int64
	StaffID        int64
	Month          string
	Points         int
	GoodDeedsCount int
	BadDeedsCount  int
	UpdatedAt      time.Time
}

// RankingEntry is one leaderboard row. Score carries the raw-event total when
// the raw strategy runs; Points/GoodDeeds/BadDeeds come from the ledger
// strategy. Reward is zero outside ranks 1..3.
type RankingEntry struct {
	StaffID   int64
	FullName  string
	AvatarURL *string
	Position  *string
	Score     int
	Points    int
	GoodDeeds int
	BadDeeds  int
	Rank      int
	Reward    float64
}
