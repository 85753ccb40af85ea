package export

import (
	"testing"
	"time"

	"github.com/shophq/opscore/internal/db"
	"github.com/shophq/opscore/internal/models"
)

func TestNewMonthlyWorkbook(t *testing.T) {
	pos := "Cashier"
	rankings := []models.RankingEntry{
		{StaffID: 1, FullName: "Bala", Position: &pos, Points: 8, GoodDeeds: 8, Rank: 1, Reward: 100},
		{StaffID: 2, FullName: "Ali", Points: 5, GoodDeeds: 6, BadDeeds: 1, Rank: 2, Reward: 50},
	}
	paidAt := time.Date(2025, 3, 31, 18, 0, 0, 0, time.UTC)
	payroll := []db.PayrollWithName{
		{
			PayrollRecord: models.PayrollRecord{
				StaffID: 1, Month: "2025-03", BasicSalary: 1500, TotalPenalty: 100,
				FinalAmount: 1400, PaymentMethod: "bank_transfer",
				Status: models.PayrollPaid, PaidAt: &paidAt,
			},
			FullName: "Bala",
		},
	}

	wb, err := NewMonthlyWorkbook("2025-03", []SheetSpec{
		RankingSheet(rankings),
		PayrollSheet(payroll),
	})
	if err != nil {
		t.Fatal(err)
	}

	sheets := wb.File.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Rankings" || sheets[1] != "Payroll" {
		t.Fatalf("sheets = %v", sheets)
	}

	check := func(sheet, cell, want string) {
		t.Helper()
		got, err := wb.File.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%s!%s = %q, want %q", sheet, cell, got, want)
		}
	}
	check("Rankings", "A1", "Rank")
	check("Rankings", "B2", "Bala")
	check("Rankings", "C2", "Cashier")
	check("Rankings", "G2", "100.00")
	check("Rankings", "B3", "Ali")
	check("Rankings", "C3", "") // no position
	check("Payroll", "A2", "Bala")
	check("Payroll", "F2", "1400.00")
	check("Payroll", "I2", "2025-03-31 18:00")
}

func TestRankingSheet_Empty(t *testing.T) {
	s := RankingSheet(nil)
	if len(s.Rows) != 0 || len(s.Header) == 0 {
		t.Fatalf("sheet = %+v", s)
	}
	if _, err := NewMonthlyWorkbook("2025-03", []SheetSpec{s}); err != nil {
		t.Fatal(err)
	}
}
