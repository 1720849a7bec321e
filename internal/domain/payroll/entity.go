package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. The engine only ever creates pending records; approval
// workflows move them forward and never touch the computed money fields.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
	StatusRejected Status = "rejected"
)

// Record is one computed payroll row, unique per (employee_id, month, year).
type Record struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int

	BaseSalary          decimal.Decimal
	ActualWorkingDays   decimal.Decimal
	WeekdayOvertimeDays decimal.Decimal
	WeekendOvertimeDays decimal.Decimal

	ActualBaseSalary   decimal.Decimal
	WeekdayOvertimePay decimal.Decimal
	WeekendOvertimePay decimal.Decimal
	TotalOvertimePay   decimal.Decimal
	TotalAllowances    decimal.Decimal
	GrossIncome        decimal.Decimal

	// Employee-side insurance.
	SocialInsurance        decimal.Decimal
	HealthInsurance        decimal.Decimal
	UnemploymentInsurance  decimal.Decimal
	UnionFee               decimal.Decimal
	EmployeeInsuranceTotal decimal.Decimal

	// Company-side insurance, informational only.
	CompanyInsuranceTotal decimal.Decimal

	TaxableIncome   decimal.Decimal
	IncomeTax       decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	Status    Status
	PaidAt    *time.Time
	PaidBy    *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
