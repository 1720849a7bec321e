package payroll

import (
	"github.com/palmahr/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayrollRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordPayload is the wire shape of a computed payroll row. Generate
// returns it and Save accepts it back, so a client can review a batch
// before persisting it.
type RecordPayload struct {
	ID          string `json:"id,omitempty"`
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`

	BaseSalary          decimal.Decimal `json:"base_salary"`
	ActualWorkingDays   decimal.Decimal `json:"actual_working_days"`
	WeekdayOvertimeDays decimal.Decimal `json:"weekday_overtime_days"`
	WeekendOvertimeDays decimal.Decimal `json:"weekend_overtime_days"`

	ActualBaseSalary   decimal.Decimal `json:"actual_base_salary"`
	WeekdayOvertimePay decimal.Decimal `json:"weekday_overtime_pay"`
	WeekendOvertimePay decimal.Decimal `json:"weekend_overtime_pay"`
	TotalOvertimePay   decimal.Decimal `json:"total_overtime_pay"`
	TotalAllowances    decimal.Decimal `json:"total_allowances"`
	GrossIncome        decimal.Decimal `json:"gross_income"`

	SocialInsurance        decimal.Decimal `json:"social_insurance"`
	HealthInsurance        decimal.Decimal `json:"health_insurance"`
	UnemploymentInsurance  decimal.Decimal `json:"unemployment_insurance"`
	UnionFee               decimal.Decimal `json:"union_fee"`
	EmployeeInsuranceTotal decimal.Decimal `json:"employee_insurance_total"`
	CompanyInsuranceTotal  decimal.Decimal `json:"company_insurance_total"`

	TaxableIncome   decimal.Decimal `json:"taxable_income"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	Status Status `json:"status"`

	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
}

type SavePayrollRequest struct {
	Records   []RecordPayload `json:"records"`
	Overwrite bool            `json:"overwrite"`
}

func (r *SavePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{Field: "records", Message: "at least one record is required"})
	}
	for _, rec := range r.Records {
		if rec.EmployeeID == "" {
			errs = append(errs, validator.ValidationError{Field: "records", Message: "every record needs an employee_id"})
			break
		}
	}
	for _, rec := range r.Records {
		if !validator.IsValidPeriod(rec.PeriodMonth, rec.PeriodYear) {
			errs = append(errs, validator.ValidationError{Field: "records", Message: "every record needs a valid period"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SavePayrollResponse struct {
	Success    bool `json:"success"`
	SavedCount int  `json:"saved_count"`
}

type PayrollSummaryResponse struct {
	PeriodMonth           int             `json:"period_month"`
	PeriodYear            int             `json:"period_year"`
	TotalEmployees        int             `json:"total_employees"`
	TotalGrossIncome      decimal.Decimal `json:"total_gross_income"`
	TotalOvertimePay      decimal.Decimal `json:"total_overtime_pay"`
	TotalAllowances       decimal.Decimal `json:"total_allowances"`
	TotalInsuranceCharged decimal.Decimal `json:"total_insurance_charged"`
	TotalIncomeTax        decimal.Decimal `json:"total_income_tax"`
	TotalNetSalary        decimal.Decimal `json:"total_net_salary"`
	PendingCount          int             `json:"pending_count"`
	PaidCount             int             `json:"paid_count"`
}

// ToPayload maps a Record to its wire shape.
func ToPayload(r Record) RecordPayload {
	p := RecordPayload{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		PeriodMonth: r.PeriodMonth,
		PeriodYear:  r.PeriodYear,

		BaseSalary:          r.BaseSalary,
		ActualWorkingDays:   r.ActualWorkingDays,
		WeekdayOvertimeDays: r.WeekdayOvertimeDays,
		WeekendOvertimeDays: r.WeekendOvertimeDays,

		ActualBaseSalary:   r.ActualBaseSalary,
		WeekdayOvertimePay: r.WeekdayOvertimePay,
		WeekendOvertimePay: r.WeekendOvertimePay,
		TotalOvertimePay:   r.TotalOvertimePay,
		TotalAllowances:    r.TotalAllowances,
		GrossIncome:        r.GrossIncome,

		SocialInsurance:        r.SocialInsurance,
		HealthInsurance:        r.HealthInsurance,
		UnemploymentInsurance:  r.UnemploymentInsurance,
		UnionFee:               r.UnionFee,
		EmployeeInsuranceTotal: r.EmployeeInsuranceTotal,
		CompanyInsuranceTotal:  r.CompanyInsuranceTotal,

		TaxableIncome:   r.TaxableIncome,
		IncomeTax:       r.IncomeTax,
		TotalDeductions: r.TotalDeductions,
		NetSalary:       r.NetSalary,

		Status: r.Status,
	}
	if r.EmployeeName != nil {
		p.EmployeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		p.EmployeeCode = *r.EmployeeCode
	}
	return p
}

// FromPayload maps a wire record back to the entity for persistence.
func FromPayload(p RecordPayload) Record {
	status := p.Status
	if status == "" {
		status = StatusPending
	}
	rec := Record{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		PeriodMonth: p.PeriodMonth,
		PeriodYear:  p.PeriodYear,

		BaseSalary:          p.BaseSalary,
		ActualWorkingDays:   p.ActualWorkingDays,
		WeekdayOvertimeDays: p.WeekdayOvertimeDays,
		WeekendOvertimeDays: p.WeekendOvertimeDays,

		ActualBaseSalary:   p.ActualBaseSalary,
		WeekdayOvertimePay: p.WeekdayOvertimePay,
		WeekendOvertimePay: p.WeekendOvertimePay,
		TotalOvertimePay:   p.TotalOvertimePay,
		TotalAllowances:    p.TotalAllowances,
		GrossIncome:        p.GrossIncome,

		SocialInsurance:        p.SocialInsurance,
		HealthInsurance:        p.HealthInsurance,
		UnemploymentInsurance:  p.UnemploymentInsurance,
		UnionFee:               p.UnionFee,
		EmployeeInsuranceTotal: p.EmployeeInsuranceTotal,
		CompanyInsuranceTotal:  p.CompanyInsuranceTotal,

		TaxableIncome:   p.TaxableIncome,
		IncomeTax:       p.IncomeTax,
		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,

		Status: status,
	}
	return rec
}
