package regulation

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRegulation is one effective-dated version of the compensation
// parameters. Rows are append-only: a new version is inserted with a later
// effective date and old versions stay queryable.
type SalaryRegulation struct {
	ID            string
	Name          string
	EffectiveDate time.Time

	WorkingDaysPerMonth decimal.Decimal
	WorkingHoursPerDay  decimal.Decimal
	MaxHoursPerDay      decimal.Decimal

	// Overtime rates are percentages of the daily rate (150 means 150%).
	OvertimeWeekdayRate decimal.Decimal
	OvertimeWeekendRate decimal.Decimal
	OvertimeHolidayRate decimal.Decimal
	OvertimeNightRate   decimal.Decimal

	// Employee-side insurance rates, percent of the capped insurance base.
	SocialInsuranceRate       decimal.Decimal
	HealthInsuranceRate       decimal.Decimal
	UnemploymentInsuranceRate decimal.Decimal
	UnionFeeRate              decimal.Decimal

	// Company-side insurance rates.
	CompanySocialInsuranceRate       decimal.Decimal
	CompanyHealthInsuranceRate       decimal.Decimal
	CompanyUnemploymentInsuranceRate decimal.Decimal
	CompanyUnionFeeRate              decimal.Decimal

	// MaxInsuranceSalary caps the insurance base; zero means no cap.
	MaxInsuranceSalary decimal.Decimal

	PersonalDeduction    decimal.Decimal
	DependentDeduction   decimal.Decimal
	EnableProgressiveTax bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InsuranceBase returns the salary base insurance is computed on,
// applying the regulation cap when one is configured.
func (r SalaryRegulation) InsuranceBase(baseSalary decimal.Decimal) decimal.Decimal {
	if r.MaxInsuranceSalary.IsPositive() && baseSalary.GreaterThan(r.MaxInsuranceSalary) {
		return r.MaxInsuranceSalary
	}
	return baseSalary
}
