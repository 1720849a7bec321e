package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status classifies one attendance row.
type Status string

const (
	StatusPresentFull     Status = "present_full"
	StatusPresentHalf     Status = "present_half"
	StatusLateFull        Status = "late_full"
	StatusAbsentFull      Status = "absent_full"
	StatusLeaveFull       Status = "leave_full"
	StatusLeaveHalfDay    Status = "leave_half_day"
	StatusOvertime        Status = "overtime"
	StatusWeekendOvertime Status = "weekend_overtime"
	StatusPaidLeave       Status = "paid_leave"
)

// standardWorkStatuses are the only statuses that credit actual working
// days. weekend_overtime never does.
var standardWorkStatuses = map[Status]bool{
	StatusPresentFull: true,
	StatusPresentHalf: true,
	StatusPaidLeave:   true,
}

// CountsAsWorkingDay reports whether s credits actual_working_days.
func (s Status) CountsAsWorkingDay() bool {
	return standardWorkStatuses[s]
}

// Record is one structured per-employee-per-day attendance row.
// WorkValue is the fractional day-equivalent credit in [0, 1].
type Record struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Status        Status
	WorkValue     decimal.Decimal
	OvertimeHours decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsWeekend classifies the row's calendar date, independent of Status.
func (r Record) IsWeekend() bool {
	wd := r.Date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// RawClockEvent is one clock-in/out event from the capture device feed.
// FingerID has no guaranteed relationship to the employee code format;
// reconciliation normalizes both sides. Events are consumed once per run
// and never persisted by the engine.
type RawClockEvent struct {
	FingerID  string
	CheckTime time.Time
}

// MonthlyTotals is the aggregated attendance input to compensation.
type MonthlyTotals struct {
	ActualWorkingDays   decimal.Decimal
	WeekdayOvertimeDays decimal.Decimal
	WeekendOvertimeDays decimal.Decimal
}

// ClockWindow is the min/max event window for one (identity, day) group.
type ClockWindow struct {
	MinTime time.Time
	MaxTime time.Time
}

// DayKey identifies one reconciled (identity, calendar day) group.
// Identity is the employee ID when the device code matched the roster,
// otherwise the synthesized "finger:<id>" placeholder.
type DayKey struct {
	Identity string
	Date     time.Time
}
