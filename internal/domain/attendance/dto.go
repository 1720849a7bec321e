package attendance

import (
	"github.com/palmahr/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SummaryRequest struct {
	Year  int
	Month int
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DailySummaryResponse is one reconciled (identity, day) row in the
// monthly attendance summary view.
type DailySummaryResponse struct {
	Identity      string          `json:"identity"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	Unlinked      bool            `json:"unlinked,omitempty"`
	Date          string          `json:"date"`
	ClockIn       string          `json:"clock_in"`
	ClockOut      string          `json:"clock_out"`
	WorkHours     decimal.Decimal `json:"work_hours"`
	WorkValue     decimal.Decimal `json:"work_value"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

// EmployeeSummaryResponse groups the daily rows per identity with period
// totals.
type EmployeeSummaryResponse struct {
	Identity      string                 `json:"identity"`
	EmployeeName  string                 `json:"employee_name,omitempty"`
	Unlinked      bool                   `json:"unlinked,omitempty"`
	Days          []DailySummaryResponse `json:"days"`
	TotalDays     decimal.Decimal        `json:"total_days"`
	TotalOvertime decimal.Decimal        `json:"total_overtime_hours"`

	// Calendar-classified overtime splits (Sat/Sun by date, not status).
	WeekdayOvertimeHours decimal.Decimal `json:"weekday_overtime_hours"`
	WeekendOvertimeHours decimal.Decimal `json:"weekend_overtime_hours"`
}

type MonthlySummaryResponse struct {
	Year      int                       `json:"year"`
	Month     int                       `json:"month"`
	Employees []EmployeeSummaryResponse `json:"employees"`
}
