package engine

import (
	"context"
	"testing"

	"github.com/shophq/opscore/internal/models"
	"go.uber.org/zap"
)

// validation-only engine: rejected inputs never reach the database
func newTestEngine() *Engine {
	return New(nil, zap.NewNop(), kualaLumpur)
}

func validSettlement() SettlementInput {
	return SettlementInput{
		StaffID:       7,
		Month:         "2025-03",
		BasicSalary:   1500,
		TotalPenalty:  120.50,
		TotalBonus:    200,
		FinalAmount:   1579.50,
		PaymentMethod: "bank_transfer",
	}
}

func TestSettlePayroll_Validation(t *testing.T) {
	e := newTestEngine()
	manager := Principal{ID: 1, Role: models.RoleManager}

	cases := []struct {
		name     string
		p        Principal
		mutate   func(*SettlementInput)
		wantKind FaultKind
	}{
		{
			name:     "staff_role_rejected",
			p:        Principal{ID: 2, Role: models.RoleStaff},
			mutate:   func(in *SettlementInput) {},
			wantKind: PermissionDenied,
		},
		{
			name:     "supervisor_rejected",
			p:        Principal{ID: 3, Role: models.RoleSupervisor},
			mutate:   func(in *SettlementInput) {},
			wantKind: PermissionDenied,
		},
		{
			name:     "bad_month_format",
			p:        manager,
			mutate:   func(in *SettlementInput) { in.Month = "03-2025" },
			wantKind: ValidationError,
		},
		{
			name:     "month_thirteen",
			p:        manager,
			mutate:   func(in *SettlementInput) { in.Month = "2025-13" },
			wantKind: ValidationError,
		},
		{
			name:     "negative_penalty",
			p:        manager,
			mutate:   func(in *SettlementInput) { in.TotalPenalty = -1 },
			wantKind: ValidationError,
		},
		{
			name:     "missing_payment_method",
			p:        manager,
			mutate:   func(in *SettlementInput) { in.PaymentMethod = "" },
			wantKind: ValidationError,
		},
		{
			name:     "final_amount_mismatch",
			p:        manager,
			mutate:   func(in *SettlementInput) { in.FinalAmount = 9999 },
			wantKind: ValidationError,
		},
		{
			name:     "zero_staff_id",
			p:        manager,
			mutate:   func(in *SettlementInput) { in.StaffID = 0 },
			wantKind: ValidationError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSettlement()
			tc.mutate(&in)
			res := e.SettlePayroll(context.Background(), tc.p, in)
			if res.Success {
				t.Fatal("expected rejection, got success")
			}
			if res.Err == nil || res.Err.Kind != tc.wantKind {
				t.Fatalf("fault = %+v, want kind %s", res.Err, tc.wantKind)
			}
		})
	}
}

func TestSettlePayroll_MismatchJustOverTolerance(t *testing.T) {
	// one sen off is already a mismatch; only sub-half-sen float noise passes
	in := validSettlement()
	in.FinalAmount += 0.01

	e := newTestEngine()
	res := e.SettlePayroll(context.Background(), Principal{ID: 1, Role: models.RoleAdmin}, in)
	if res.Success || res.Err == nil || res.Err.Kind != ValidationError {
		t.Fatalf("expected validation fault, got %+v", res)
	}
}

func TestKitDeduction(t *testing.T) {
	items := []models.KitItem{
		{Name: "Uniform", Price: 45.90},
		{Name: "Name Tag", Price: 8.50},
		{Name: "Apron", Price: 25.00},
	}
	if got := KitDeduction(items); got != 79.40 {
		t.Fatalf("KitDeduction = %.2f, want 79.40", got)
	}
	if got := KitDeduction(nil); got != 0 {
		t.Fatalf("KitDeduction(nil) = %.2f, want 0", got)
	}
}

func TestMonthBounds(t *testing.T) {
	e := newTestEngine()

	from, to, err := e.monthBounds("2025-12")
	if err != nil {
		t.Fatal(err)
	}
	if from.Month() != 12 || from.Day() != 1 || from.Hour() != 0 {
		t.Fatalf("from = %v", from)
	}
	if to.Year() != 2026 || to.Month() != 1 || to.Day() != 1 {
		t.Fatalf("to = %v, want rollover into 2026-01", to)
	}

	if _, _, err := e.monthBounds("2025-3"); err == nil {
		t.Fatal("expected error for non-padded month")
	}
}
