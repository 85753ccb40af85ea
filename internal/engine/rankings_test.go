package engine

import (
	"testing"

	"github.com/shophq/opscore/internal/models"
)

func TestRawScore(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{StaffID: 1, Status: models.StatusPresent},
		{StaffID: 1, Status: models.StatusLate, PenaltyAmount: 5.50},
		{StaffID: 1, Status: models.StatusAbsent},
		{StaffID: 2, Status: models.StatusPresent},
	}
	tasks := []models.TaskRecord{
		{StaffID: 1, IsCompleted: true},
		{StaffID: 1, IsCompleted: false},
		{StaffID: 2, IsCompleted: true},
	}

	// 10 - 5 - 10 - floor(5.50) + 5 = -5
	if got := rawScore(attendance, tasks, 1); got != -5 {
		t.Fatalf("staff 1 score = %d, want -5", got)
	}
	// 10 + 5 = 15; staff 1's rows must not leak in
	if got := rawScore(attendance, tasks, 2); got != 15 {
		t.Fatalf("staff 2 score = %d, want 15", got)
	}
	if got := rawScore(attendance, tasks, 99); got != 0 {
		t.Fatalf("unknown staff score = %d, want 0", got)
	}
}

func TestSortRankings_TieBreakByName(t *testing.T) {
	entries := []models.RankingEntry{
		{StaffID: 3, FullName: "Chong", Score: 20},
		{StaffID: 1, FullName: "Ali", Score: 20},
		{StaffID: 2, FullName: "Bala", Score: 30},
	}
	sortRankings(entries, false)

	wantOrder := []string{"Bala", "Ali", "Chong"}
	for i, want := range wantOrder {
		if entries[i].FullName != want {
			t.Fatalf("position %d = %s, want %s", i, entries[i].FullName, want)
		}
	}
}

func TestSortRankings_ByPoints(t *testing.T) {
	entries := []models.RankingEntry{
		{FullName: "Ali", Points: 10, Score: 999},
		{FullName: "Bala", Points: 40, Score: 0},
		{FullName: "Chong", Points: 40, Score: 1},
	}
	sortRankings(entries, true)

	wantOrder := []string{"Bala", "Chong", "Ali"}
	for i, want := range wantOrder {
		if entries[i].FullName != want {
			t.Fatalf("position %d = %s, want %s", i, entries[i].FullName, want)
		}
	}
}

func TestSortRankings_Deterministic(t *testing.T) {
	build := func() []models.RankingEntry {
		return []models.RankingEntry{
			{FullName: "Siti", Score: 10},
			{FullName: "Ahmad", Score: 10},
			{FullName: "Mei Ling", Score: 10},
		}
	}
	first := build()
	sortRankings(first, false)
	for run := 0; run < 5; run++ {
		again := build()
		sortRankings(again, false)
		for i := range first {
			if again[i].FullName != first[i].FullName {
				t.Fatalf("run %d: position %d changed from %s to %s",
					run, i, first[i].FullName, again[i].FullName)
			}
		}
	}
}
