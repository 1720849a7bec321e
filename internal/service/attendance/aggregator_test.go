package attendance

import (
	"testing"
	"time"

	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/domain/regulation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func row(status attendance.Status, workValue string) attendance.Record {
	return attendance.Record{
		Status:    status,
		WorkValue: decimal.RequireFromString(workValue),
	}
}

func TestAggregateByStatus(t *testing.T) {
	rows := []attendance.Record{
		row(attendance.StatusPresentFull, "1"),
		row(attendance.StatusPresentFull, "1"),
		row(attendance.StatusPresentHalf, "0.5"),
		row(attendance.StatusPaidLeave, "1"),
		row(attendance.StatusOvertime, "0.5"),
		row(attendance.StatusWeekendOvertime, "1"),
		row(attendance.StatusAbsentFull, "0"),
		row(attendance.StatusLeaveFull, "1"),
	}

	totals := AggregateByStatus(rows)

	assert.True(t, decimal.RequireFromString("3.5").Equal(totals.ActualWorkingDays),
		"actual working days = %s", totals.ActualWorkingDays)
	assert.True(t, decimal.RequireFromString("0.5").Equal(totals.WeekdayOvertimeDays),
		"weekday overtime days = %s", totals.WeekdayOvertimeDays)
	assert.True(t, decimal.NewFromInt(1).Equal(totals.WeekendOvertimeDays),
		"weekend overtime days = %s", totals.WeekendOvertimeDays)
}

func TestAggregateByStatus_WeekendOvertimeNeverCreditsWorkingDays(t *testing.T) {
	rows := []attendance.Record{
		row(attendance.StatusWeekendOvertime, "1"),
		row(attendance.StatusWeekendOvertime, "1"),
	}

	totals := AggregateByStatus(rows)

	assert.True(t, totals.ActualWorkingDays.IsZero())
	assert.True(t, decimal.NewFromInt(2).Equal(totals.WeekendOvertimeDays))
}

func TestAggregateByStatus_IgnoresNegativeWorkValues(t *testing.T) {
	rows := []attendance.Record{
		row(attendance.StatusPresentFull, "1"),
		row(attendance.StatusPresentFull, "-1"),
	}

	totals := AggregateByStatus(rows)

	assert.True(t, decimal.NewFromInt(1).Equal(totals.ActualWorkingDays))
}

func TestAggregateByStatus_Empty(t *testing.T) {
	totals := AggregateByStatus(nil)

	assert.True(t, totals.ActualWorkingDays.IsZero())
	assert.True(t, totals.WeekdayOvertimeDays.IsZero())
	assert.True(t, totals.WeekendOvertimeDays.IsZero())
}

func calendarReg() regulation.SalaryRegulation {
	return regulation.ApplyDefaults(regulation.SalaryRegulation{}, regulation.StandardDefaults())
}

func TestAggregateByCalendar_WeekdayBeyondStandardHours(t *testing.T) {
	// 2024-03-06 is a Wednesday.
	days := []DailyHours{
		{Date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), Hours: decimal.NewFromInt(10)},
	}

	weekday, weekend := AggregateByCalendar(days, calendarReg())

	assert.True(t, decimal.NewFromInt(2).Equal(weekday), "weekday overtime = %s", weekday)
	assert.True(t, weekend.IsZero())
}

func TestAggregateByCalendar_WeekdayCappedAtMaxHours(t *testing.T) {
	// 16 worked hours cap at 12 countable, so 4 overtime hours.
	days := []DailyHours{
		{Date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), Hours: decimal.NewFromInt(16)},
	}

	weekday, _ := AggregateByCalendar(days, calendarReg())

	assert.True(t, decimal.NewFromInt(4).Equal(weekday), "weekday overtime = %s", weekday)
}

func TestAggregateByCalendar_WeekendCountsAllHours(t *testing.T) {
	// 2024-03-09 is a Saturday, 2024-03-10 a Sunday.
	days := []DailyHours{
		{Date: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Hours: decimal.NewFromInt(5)},
		{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Hours: decimal.NewFromInt(3)},
	}

	weekday, weekend := AggregateByCalendar(days, calendarReg())

	assert.True(t, weekday.IsZero())
	assert.True(t, decimal.NewFromInt(8).Equal(weekend), "weekend overtime = %s", weekend)
}

func TestAggregateByCalendar_ShortWeekdayYieldsNoOvertime(t *testing.T) {
	days := []DailyHours{
		{Date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), Hours: decimal.NewFromInt(6)},
	}

	weekday, weekend := AggregateByCalendar(days, calendarReg())

	assert.True(t, weekday.IsZero())
	assert.True(t, weekend.IsZero())
}
