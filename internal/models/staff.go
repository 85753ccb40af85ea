package models

import "time"

type Role string

const (
	RoleStaff      Role = "staff"
	RoleSupervisor Role = "supervisor"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleMaster     Role = "master"
)

// CanRecordAttendance reports whether the role may create attendance records
// for other staff.
func (r Role) CanRecordAttendance() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMaster, RoleSupervisor:
		return true
	}
	return false
}

// CanSettlePayroll reports whether the role may finalize monthly pay.
func (r Role) CanSettlePayroll() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMaster:
		return true
	}
	return false
}

// CanResetData reports whether the role may run the operational data wipe.
func (r Role) CanResetData() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMaster:
		return true
	}
	return false
}

// KitItem is one onboarding kit line (name + price in RM). The kit is stored
// as a JSONB array on the staff row and deducted from first-month payroll.
type KitItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type StaffProfile struct {
	ID            int64
	FullName      string
	Role          Role
	Position      *string
	BaseSalary    float64
	OnboardingKit []KitItem
	AvatarURL     *string
	IsActive      bool
	CreatedAt     time.Time
}
