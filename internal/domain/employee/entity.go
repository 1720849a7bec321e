package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentType string

const (
	EmploymentTypePermanent  EmploymentType = "permanent"
	EmploymentTypeProbation  EmploymentType = "probation"
	EmploymentTypeContract   EmploymentType = "contract"
	EmploymentTypeInternship EmploymentType = "internship"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

type MaritalStatus string

const (
	MaritalStatusSingle  MaritalStatus = "single"
	MaritalStatusMarried MaritalStatus = "married"
)

// Profile is the read-only employee view consumed by the payroll engine.
// HR record mutation happens elsewhere; the engine never writes this.
type Profile struct {
	ID               string
	EmployeeCode     string
	FullName         string
	DepartmentID     *string
	DepartmentName   *string
	PositionID       *string
	PositionName     string
	BaseSalary       decimal.Decimal
	EmploymentType   EmploymentType
	EmploymentStatus EmploymentStatus
	MaritalStatus    MaritalStatus
	DependentsCount  int

	// Fixed monthly allowances.
	HousingAllowance    decimal.Decimal
	TransportAllowance  decimal.Decimal
	MealAllowance       decimal.Decimal
	PhoneAllowance      decimal.Decimal
	PositionAllowance   decimal.Decimal
	AttendanceAllowance decimal.Decimal
	OtherAllowance      decimal.Decimal

	// PersonalDeduction overrides the regulation value when set.
	PersonalDeduction *decimal.Decimal

	HireDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// probationMarkers is the legacy position-name heuristic, kept for rows
// that predate the employment_type column.
var probationMarkers = []string{"probation", "intern"}

// IsProbation reports whether the probation salary multiplier applies.
// The employment type is authoritative; the position name is a fallback.
func (p Profile) IsProbation() bool {
	if p.EmploymentType == EmploymentTypeProbation || p.EmploymentType == EmploymentTypeInternship {
		return true
	}
	if p.EmploymentType != "" {
		return false
	}
	name := strings.ToLower(p.PositionName)
	for _, marker := range probationMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// TotalAllowances sums the fixed monthly allowance columns.
func (p Profile) TotalAllowances() decimal.Decimal {
	return p.HousingAllowance.
		Add(p.TransportAllowance).
		Add(p.MealAllowance).
		Add(p.PhoneAllowance).
		Add(p.PositionAllowance).
		Add(p.AttendanceAllowance).
		Add(p.OtherAllowance)
}
