package regulation

import "github.com/shopspring/decimal"

// Defaults holds the fallback values merged into a regulation before the
// calculator runs. Keeping the whole default policy in one structure makes
// it auditable instead of scattering inline fallbacks through the math.
type Defaults struct {
	WorkingDaysPerMonth decimal.Decimal
	WorkingHoursPerDay  decimal.Decimal
	MaxHoursPerDay      decimal.Decimal
	OvertimeWeekdayRate decimal.Decimal
	OvertimeWeekendRate decimal.Decimal
	OvertimeHolidayRate decimal.Decimal
	OvertimeNightRate   decimal.Decimal
	PersonalDeduction   decimal.Decimal
	DependentDeduction  decimal.Decimal
}

// StandardDefaults are the best-effort fallbacks applied when a regulation
// row is missing fields. A bad regulation row degrades a computation, it
// does not abort the batch.
func StandardDefaults() Defaults {
	return Defaults{
		WorkingDaysPerMonth: decimal.NewFromInt(22),
		WorkingHoursPerDay:  decimal.NewFromInt(8),
		MaxHoursPerDay:      decimal.NewFromInt(12),
		OvertimeWeekdayRate: decimal.NewFromInt(150),
		OvertimeWeekendRate: decimal.NewFromInt(200),
		OvertimeHolidayRate: decimal.NewFromInt(300),
		OvertimeNightRate:   decimal.NewFromInt(150),
		PersonalDeduction:   decimal.NewFromInt(11_000_000),
		DependentDeduction:  decimal.NewFromInt(4_400_000),
	}
}

// ApplyDefaults returns a copy of reg with zero-valued fields replaced by
// the defaults.
func ApplyDefaults(reg SalaryRegulation, d Defaults) SalaryRegulation {
	if reg.WorkingDaysPerMonth.IsZero() {
		reg.WorkingDaysPerMonth = d.WorkingDaysPerMonth
	}
	if reg.WorkingHoursPerDay.IsZero() {
		reg.WorkingHoursPerDay = d.WorkingHoursPerDay
	}
	if reg.MaxHoursPerDay.IsZero() {
		reg.MaxHoursPerDay = d.MaxHoursPerDay
	}
	if reg.OvertimeWeekdayRate.IsZero() {
		reg.OvertimeWeekdayRate = d.OvertimeWeekdayRate
	}
	if reg.OvertimeWeekendRate.IsZero() {
		reg.OvertimeWeekendRate = d.OvertimeWeekendRate
	}
	if reg.OvertimeHolidayRate.IsZero() {
		reg.OvertimeHolidayRate = d.OvertimeHolidayRate
	}
	if reg.OvertimeNightRate.IsZero() {
		reg.OvertimeNightRate = d.OvertimeNightRate
	}
	if reg.PersonalDeduction.IsZero() {
		reg.PersonalDeduction = d.PersonalDeduction
	}
	if reg.DependentDeduction.IsZero() {
		reg.DependentDeduction = d.DependentDeduction
	}
	return reg
}
