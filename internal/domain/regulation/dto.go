package regulation

import (
	"github.com/palmahr/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRegulationRequest struct {
	Name          string `json:"name"`
	EffectiveDate string `json:"effective_date"`

	WorkingDaysPerMonth decimal.Decimal `json:"working_days_per_month"`
	WorkingHoursPerDay  decimal.Decimal `json:"working_hours_per_day"`
	MaxHoursPerDay      decimal.Decimal `json:"max_hours_per_day"`

	OvertimeWeekdayRate decimal.Decimal `json:"overtime_weekday_rate"`
	OvertimeWeekendRate decimal.Decimal `json:"overtime_weekend_rate"`
	OvertimeHolidayRate decimal.Decimal `json:"overtime_holiday_rate"`
	OvertimeNightRate   decimal.Decimal `json:"overtime_night_rate"`

	SocialInsuranceRate       decimal.Decimal `json:"social_insurance_rate"`
	HealthInsuranceRate       decimal.Decimal `json:"health_insurance_rate"`
	UnemploymentInsuranceRate decimal.Decimal `json:"unemployment_insurance_rate"`
	UnionFeeRate              decimal.Decimal `json:"union_fee_rate"`

	CompanySocialInsuranceRate       decimal.Decimal `json:"company_social_insurance_rate"`
	CompanyHealthInsuranceRate       decimal.Decimal `json:"company_health_insurance_rate"`
	CompanyUnemploymentInsuranceRate decimal.Decimal `json:"company_unemployment_insurance_rate"`
	CompanyUnionFeeRate              decimal.Decimal `json:"company_union_fee_rate"`

	MaxInsuranceSalary decimal.Decimal `json:"max_insurance_salary"`

	PersonalDeduction    decimal.Decimal `json:"personal_deduction"`
	DependentDeduction   decimal.Decimal `json:"dependent_deduction"`
	EnableProgressiveTax bool            `json:"enable_progressive_tax"`
}

func (r *CreateRegulationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if r.WorkingDaysPerMonth.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "working_days_per_month", Message: "must be non-negative"})
	}
	if r.OvertimeWeekdayRate.IsNegative() || r.OvertimeWeekendRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_rates", Message: "must be non-negative"})
	}
	if r.MaxInsuranceSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "max_insurance_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegulationResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EffectiveDate string `json:"effective_date"`

	WorkingDaysPerMonth decimal.Decimal `json:"working_days_per_month"`
	WorkingHoursPerDay  decimal.Decimal `json:"working_hours_per_day"`
	MaxHoursPerDay      decimal.Decimal `json:"max_hours_per_day"`

	OvertimeWeekdayRate decimal.Decimal `json:"overtime_weekday_rate"`
	OvertimeWeekendRate decimal.Decimal `json:"overtime_weekend_rate"`
	OvertimeHolidayRate decimal.Decimal `json:"overtime_holiday_rate"`
	OvertimeNightRate   decimal.Decimal `json:"overtime_night_rate"`

	SocialInsuranceRate       decimal.Decimal `json:"social_insurance_rate"`
	HealthInsuranceRate       decimal.Decimal `json:"health_insurance_rate"`
	UnemploymentInsuranceRate decimal.Decimal `json:"unemployment_insurance_rate"`
	UnionFeeRate              decimal.Decimal `json:"union_fee_rate"`

	CompanySocialInsuranceRate       decimal.Decimal `json:"company_social_insurance_rate"`
	CompanyHealthInsuranceRate       decimal.Decimal `json:"company_health_insurance_rate"`
	CompanyUnemploymentInsuranceRate decimal.Decimal `json:"company_unemployment_insurance_rate"`
	CompanyUnionFeeRate              decimal.Decimal `json:"company_union_fee_rate"`

	MaxInsuranceSalary decimal.Decimal `json:"max_insurance_salary"`

	PersonalDeduction    decimal.Decimal `json:"personal_deduction"`
	DependentDeduction   decimal.Decimal `json:"dependent_deduction"`
	EnableProgressiveTax bool            `json:"enable_progressive_tax"`
}
