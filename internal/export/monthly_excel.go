package export

import (
	"fmt"
	"time"

	"github.com/shophq/opscore/internal/db"
	"github.com/shophq/opscore/internal/models"
	"github.com/xuri/excelize/v2"
)

type SheetSpec struct {
	Title  string
	Header []string
	Rows   [][]string
}

// MonthlyWorkbook bundles the month's leaderboard and settled payroll into
// one xlsx file for the manager dashboards.
type MonthlyWorkbook struct {
	Month string
	File  *excelize.File
}

func RankingSheet(rankings []models.RankingEntry) SheetSpec {
	s := SheetSpec{
		Title:  "Rankings",
		Header: []string{"Rank", "Nama", "Stesen", "Mata", "Good Deeds", "Bad Deeds", "Ganjaran (RM)"},
	}
	for _, r := range rankings {
		pos := ""
		if r.Position != nil {
			pos = *r.Position
		}
		s.Rows = append(s.Rows, []string{
			fmt.Sprintf("%d", r.Rank),
			r.FullName,
			pos,
			fmt.Sprintf("%d", r.Points),
			fmt.Sprintf("%d", r.GoodDeeds),
			fmt.Sprintf("%d", r.BadDeeds),
			fmt.Sprintf("%.2f", r.Reward),
		})
	}
	return s
}

func PayrollSheet(rows []db.PayrollWithName) SheetSpec {
	s := SheetSpec{
		Title:  "Payroll",
		Header: []string{"Nama", "Bulan", "Gaji Asas", "Penalti", "Bonus", "Jumlah Akhir", "Kaedah", "Status", "Dibayar Pada"},
	}
	for _, p := range rows {
		paidAt := ""
		if p.PaidAt != nil {
			paidAt = p.PaidAt.Format("2006-01-02 15:04")
		}
		s.Rows = append(s.Rows, []string{
			p.FullName,
			p.Month,
			fmt.Sprintf("%.2f", p.BasicSalary),
			fmt.Sprintf("%.2f", p.TotalPenalty),
			fmt.Sprintf("%.2f", p.TotalBonus),
			fmt.Sprintf("%.2f", p.FinalAmount),
			p.PaymentMethod,
			p.Status,
			paidAt,
		})
	}
	return s
}

func NewMonthlyWorkbook(month string, sheets []SheetSpec) (*MonthlyWorkbook, error) {
	f := excelize.NewFile()

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, s := range sheets {
		name := s.Title
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("new sheet: %w", err)
			}
		}
		for col, h := range s.Header {
			cell := fmt.Sprintf("%s1", colName(col+1))
			if err := f.SetCellStr(name, cell, h); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		// header style + filter on row 1 only
		end := colName(len(s.Header)) + "1"
		_ = f.SetCellStyle(name, "A1", end, bold)
		_ = f.AutoFilter(name, "A1:"+end, nil)

		for r, row := range s.Rows {
			for c, val := range row {
				cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
				if err := f.SetCellStr(name, cell, val); err != nil {
					return nil, fmt.Errorf("set cell %s: %w", cell, err)
				}
			}
		}
		// width heuristic from header and the first rows
		for c := 1; c <= len(s.Header); c++ {
			maxim := len(s.Header[c-1])
			for r := 0; r < min(50, len(s.Rows)); r++ {
				if l := len(s.Rows[r][c-1]); l > maxim {
					maxim = l
				}
			}
			w := float64(maxim) * 0.9
			if w < 12 {
				w = 12
			}
			if w > 40 {
				w = 40
			}
			_ = f.SetColWidth(name, colName(c), colName(c), w)
		}
	}
	return &MonthlyWorkbook{Month: month, File: f}, nil
}

func (w *MonthlyWorkbook) SaveTemp() (string, error) {
	name := fmt.Sprintf("monthly_%s_%s.xlsx", w.Month, time.Now().Format("2006-01-02"))
	path := "/tmp/" + name
	return path, w.File.SaveAs(path)
}

func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}
