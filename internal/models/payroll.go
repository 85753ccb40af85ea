package models

import "time"

const (
	PayrollPending = "pending"
	PayrollPaid    = "paid"
)

// PayrollRecord is the settled pay for one staff member and one "YYYY-MM"
// month. (StaffID, Month) is unique; settlement upserts, so re-settling a
// month replaces the previous record instead of duplicating it.
type PayrollRecord struct {
	ID            int64
	StaffID       int64
	Month         string
	BasicSalary   float64
	TotalPenalty  float64
	TotalBonus    float64
	FinalAmount   float64
	PaymentMethod string
	ProofURL      *string
	Status        string
	PaidAt        *time.Time
}
