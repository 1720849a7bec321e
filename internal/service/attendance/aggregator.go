package attendance

import (
	"time"

	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/domain/regulation"
	"github.com/shopspring/decimal"
)

// Two aggregation strategies live here on purpose. AggregateByStatus feeds
// batch payroll generation and trusts the stored status classification.
// AggregateByCalendar feeds the employee-facing period summary and
// classifies weekend/weekday from the calendar date with a different
// overtime-hours formula. They are not interchangeable.

// AggregateByStatus sums structured attendance rows into the monthly
// totals the compensation calculator consumes.
//
//   - actual working days: work_value over present_full, present_half and
//     paid_leave rows; weekend_overtime never contributes here
//   - weekday overtime days: work_value over overtime rows
//   - weekend overtime days: work_value over weekend_overtime rows
//
// Rows with a negative work value are malformed and ignored.
func AggregateByStatus(rows []attendance.Record) attendance.MonthlyTotals {
	totals := attendance.MonthlyTotals{
		ActualWorkingDays:   decimal.Zero,
		WeekdayOvertimeDays: decimal.Zero,
		WeekendOvertimeDays: decimal.Zero,
	}

	for _, row := range rows {
		if row.WorkValue.IsNegative() {
			continue
		}
		switch {
		case row.Status.CountsAsWorkingDay():
			totals.ActualWorkingDays = totals.ActualWorkingDays.Add(row.WorkValue)
		case row.Status == attendance.StatusOvertime:
			totals.WeekdayOvertimeDays = totals.WeekdayOvertimeDays.Add(row.WorkValue)
		case row.Status == attendance.StatusWeekendOvertime:
			totals.WeekendOvertimeDays = totals.WeekendOvertimeDays.Add(row.WorkValue)
		}
	}

	return totals
}

// DailyHours is one reconciled day of worked hours, input to the
// calendar-driven strategy.
type DailyHours struct {
	Date  time.Time
	Hours decimal.Decimal
}

// AggregateByCalendar splits raw per-day worked hours into weekday and
// weekend overtime-hour totals. Weekend days (Sat/Sun by date) count every
// worked hour as overtime. Weekdays count only the hours beyond the
// regulation's working_hours_per_day, with countable hours capped at
// max_hours_per_day.
func AggregateByCalendar(days []DailyHours, reg regulation.SalaryRegulation) (weekdayOvertime, weekendOvertime decimal.Decimal) {
	weekdayOvertime = decimal.Zero
	weekendOvertime = decimal.Zero

	for _, day := range days {
		hours := day.Hours
		if hours.IsNegative() {
			continue
		}

		wd := day.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			weekendOvertime = weekendOvertime.Add(hours)
			continue
		}

		capped := hours
		if reg.MaxHoursPerDay.IsPositive() && capped.GreaterThan(reg.MaxHoursPerDay) {
			capped = reg.MaxHoursPerDay
		}
		extra := capped.Sub(reg.WorkingHoursPerDay)
		if extra.IsPositive() {
			weekdayOvertime = weekdayOvertime.Add(extra)
		}
	}

	return weekdayOvertime, weekendOvertime
}
