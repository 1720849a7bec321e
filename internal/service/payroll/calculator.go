package payroll

import (
	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/domain/employee"
	"github.com/palmahr/payroll-engine-go/internal/domain/payroll"
	"github.com/palmahr/payroll-engine-go/internal/domain/regulation"
	"github.com/shopspring/decimal"
)

var (
	hundred             = decimal.NewFromInt(100)
	probationMultiplier = decimal.New(85, -2) // 0.85
	flatTaxRate         = decimal.New(10, -2) // 0.10
)

// progressive monthly tax schedule, marginal rates per bracket.
// upTo zero marks the open-ended top bracket.
type taxBracket struct {
	upTo decimal.Decimal
	rate decimal.Decimal
}

var progressiveBrackets = []taxBracket{
	{upTo: decimal.NewFromInt(5_000_000), rate: decimal.NewFromInt(5)},
	{upTo: decimal.NewFromInt(10_000_000), rate: decimal.NewFromInt(10)},
	{upTo: decimal.NewFromInt(18_000_000), rate: decimal.NewFromInt(15)},
	{upTo: decimal.NewFromInt(32_000_000), rate: decimal.NewFromInt(20)},
	{upTo: decimal.NewFromInt(52_000_000), rate: decimal.NewFromInt(25)},
	{upTo: decimal.NewFromInt(80_000_000), rate: decimal.NewFromInt(30)},
	{upTo: decimal.Zero, rate: decimal.NewFromInt(35)},
}

// Compute derives one payroll record from an employee profile, the
// regulation in force and the monthly attendance totals. It is a pure
// function: no I/O, fully deterministic, so identical inputs always yield
// identical records. Missing regulation fields fall back to the standard
// defaults rather than failing the employee.
func Compute(profile employee.Profile, reg regulation.SalaryRegulation, totals attendance.MonthlyTotals) payroll.Record {
	reg = regulation.ApplyDefaults(reg, regulation.StandardDefaults())
	totals = clampTotals(totals)

	dailyRate := profile.BaseSalary.Div(reg.WorkingDaysPerMonth)

	multiplier := decimal.NewFromInt(1)
	if profile.IsProbation() {
		multiplier = probationMultiplier
	}

	actualBaseSalary := dailyRate.Mul(totals.ActualWorkingDays).Mul(multiplier)

	weekdayOvertimePay := dailyRate.Mul(multiplier).
		Mul(totals.WeekdayOvertimeDays).
		Mul(reg.OvertimeWeekdayRate).Div(hundred)
	weekendOvertimePay := dailyRate.Mul(multiplier).
		Mul(totals.WeekendOvertimeDays).
		Mul(reg.OvertimeWeekendRate).Div(hundred)
	totalOvertimePay := weekdayOvertimePay.Add(weekendOvertimePay)

	totalAllowances := profile.TotalAllowances()
	grossIncome := actualBaseSalary.Add(totalAllowances).Add(totalOvertimePay)

	insuranceBase := reg.InsuranceBase(profile.BaseSalary)
	socialInsurance := insuranceBase.Mul(reg.SocialInsuranceRate).Div(hundred)
	healthInsurance := insuranceBase.Mul(reg.HealthInsuranceRate).Div(hundred)
	unemploymentInsurance := insuranceBase.Mul(reg.UnemploymentInsuranceRate).Div(hundred)
	unionFee := insuranceBase.Mul(reg.UnionFeeRate).Div(hundred)
	employeeInsuranceTotal := socialInsurance.
		Add(healthInsurance).
		Add(unemploymentInsurance).
		Add(unionFee)

	companyInsuranceTotal := insuranceBase.Mul(reg.CompanySocialInsuranceRate).Div(hundred).
		Add(insuranceBase.Mul(reg.CompanyHealthInsuranceRate).Div(hundred)).
		Add(insuranceBase.Mul(reg.CompanyUnemploymentInsuranceRate).Div(hundred)).
		Add(insuranceBase.Mul(reg.CompanyUnionFeeRate).Div(hundred))

	incomeAfterInsurance := grossIncome.Sub(employeeInsuranceTotal)

	// Meal allowance is tax-exempt, modeled as a full subtraction.
	incomeForTax := incomeAfterInsurance.Sub(profile.MealAllowance)

	personalDeduction := reg.PersonalDeduction
	if profile.PersonalDeduction != nil {
		personalDeduction = *profile.PersonalDeduction
	}
	dependentDeduction := reg.DependentDeduction.Mul(decimal.NewFromInt(int64(profile.DependentsCount)))

	taxableIncome := incomeForTax.Sub(personalDeduction).Sub(dependentDeduction)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	var incomeTax decimal.Decimal
	if reg.EnableProgressiveTax {
		incomeTax = progressiveTax(taxableIncome)
	} else {
		incomeTax = taxableIncome.Mul(flatTaxRate)
	}

	totalDeductions := employeeInsuranceTotal.Add(incomeTax)
	netSalary := grossIncome.Sub(totalDeductions)

	return payroll.Record{
		EmployeeID: profile.ID,

		BaseSalary:          profile.BaseSalary,
		ActualWorkingDays:   totals.ActualWorkingDays,
		WeekdayOvertimeDays: totals.WeekdayOvertimeDays,
		WeekendOvertimeDays: totals.WeekendOvertimeDays,

		ActualBaseSalary:   actualBaseSalary,
		WeekdayOvertimePay: weekdayOvertimePay,
		WeekendOvertimePay: weekendOvertimePay,
		TotalOvertimePay:   totalOvertimePay,
		TotalAllowances:    totalAllowances,
		GrossIncome:        grossIncome,

		SocialInsurance:        socialInsurance,
		HealthInsurance:        healthInsurance,
		UnemploymentInsurance:  unemploymentInsurance,
		UnionFee:               unionFee,
		EmployeeInsuranceTotal: employeeInsuranceTotal,
		CompanyInsuranceTotal:  companyInsuranceTotal,

		TaxableIncome:   taxableIncome,
		IncomeTax:       incomeTax,
		TotalDeductions: totalDeductions,
		NetSalary:       netSalary,

		Status: payroll.StatusPending,
	}
}

// progressiveTax applies the marginal bracket schedule to taxableIncome.
func progressiveTax(taxableIncome decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	prev := decimal.Zero

	for _, bracket := range progressiveBrackets {
		if bracket.upTo.IsZero() {
			// Open-ended top bracket.
			portion := taxableIncome.Sub(prev)
			if portion.IsPositive() {
				tax = tax.Add(portion.Mul(bracket.rate).Div(hundred))
			}
			break
		}

		ceiling := bracket.upTo
		if taxableIncome.LessThan(ceiling) {
			ceiling = taxableIncome
		}
		portion := ceiling.Sub(prev)
		if portion.IsPositive() {
			tax = tax.Add(portion.Mul(bracket.rate).Div(hundred))
		}
		if taxableIncome.LessThanOrEqual(bracket.upTo) {
			break
		}
		prev = bracket.upTo
	}

	return tax
}

// clampTotals zeroes out malformed negative aggregates so a bad row never
// produces a negative payout component.
func clampTotals(totals attendance.MonthlyTotals) attendance.MonthlyTotals {
	if totals.ActualWorkingDays.IsNegative() {
		totals.ActualWorkingDays = decimal.Zero
	}
	if totals.WeekdayOvertimeDays.IsNegative() {
		totals.WeekdayOvertimeDays = decimal.Zero
	}
	if totals.WeekendOvertimeDays.IsNegative() {
		totals.WeekendOvertimeDays = decimal.Zero
	}
	return totals
}
