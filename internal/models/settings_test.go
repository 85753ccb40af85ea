package models

import (
	"strings"
	"testing"
)

func TestParseShopSettings(t *testing.T) {
	row := ShopSettingsRow{
		ID:                   3,
		StartTime:            "09:30:00",
		LatePenaltyPerMinute: "1.50",
		Penalty15m:           " 5 ",
		Penalty30m:           "",
		PenaltyMax:           "20.00",
		RankingReward1:       "100",
		RankingReward2:       "50",
		RankingReward3:       "25",
	}
	s, err := ParseShopSettings(row)
	if err != nil {
		t.Fatal(err)
	}
	if s.LatePenaltyPerMinute != 1.5 || s.Penalty15m != 5 || s.Penalty30m != 0 || s.PenaltyMax != 20 {
		t.Fatalf("penalties = %+v", s)
	}
	if s.RankingReward1 != 100 || s.RankingReward3 != 25 {
		t.Fatalf("rewards = %+v", s)
	}
}

func TestParseShopSettings_BadDecimal(t *testing.T) {
	row := ShopSettingsRow{StartTime: "09:00:00", Penalty15m: "lima"}
	_, err := ParseShopSettings(row)
	if err == nil {
		t.Fatal("expected error for non-numeric penalty_15m")
	}
	if !strings.Contains(err.Error(), "penalty_15m") {
		t.Fatalf("error should name the column: %v", err)
	}
}

func TestParseShopSettings_BadStartTime(t *testing.T) {
	row := ShopSettingsRow{StartTime: "25:00:00"}
	if _, err := ParseShopSettings(row); err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
}

func TestStartSeconds(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00:00", 9 * 3600, false},
		{"09:30", 9*3600 + 30*60, false},
		{"00:00:00", 0, false},
		{"23:59:59", 23*3600 + 59*60 + 59, false},
		{"9", 0, true},
		{"09:60:00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ShopSettings{StartTime: tc.in}.StartSeconds()
		if tc.wantErr {
			if err == nil {
				t.Fatalf("StartSeconds(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("StartSeconds(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("StartSeconds(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRewardForRank(t *testing.T) {
	s := DefaultShopSettings()
	for rank, want := range map[int]float64{1: 100, 2: 50, 3: 25, 4: 0, 0: 0, -1: 0} {
		if got := s.RewardForRank(rank); got != want {
			t.Fatalf("RewardForRank(%d) = %.2f, want %.2f", rank, got, want)
		}
	}
}

func TestRolePermissions(t *testing.T) {
	record := map[Role]bool{
		RoleStaff:      false,
		RoleSupervisor: true,
		RoleManager:    true,
		RoleAdmin:      true,
		RoleMaster:     true,
	}
	for role, want := range record {
		if got := role.CanRecordAttendance(); got != want {
			t.Fatalf("%s.CanRecordAttendance() = %v, want %v", role, got, want)
		}
	}

	settle := map[Role]bool{
		RoleStaff:      false,
		RoleSupervisor: false,
		RoleManager:    true,
		RoleAdmin:      true,
		RoleMaster:     true,
	}
	for role, want := range settle {
		if got := role.CanSettlePayroll(); got != want {
			t.Fatalf("%s.CanSettlePayroll() = %v, want %v", role, got, want)
		}
		if got := role.CanResetData(); got != want {
			t.Fatalf("%s.CanResetData() = %v, want %v", role, got, want)
		}
	}
}
