package attendance

import (
	"testing"
	"time"

	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	periodStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
)

func testRoster() []employee.Profile {
	return []employee.Profile{
		{ID: "emp-7", EmployeeCode: "EMP007", FullName: "Seven"},
		{ID: "emp-42", EmployeeCode: "42", FullName: "FortyTwo"},
	}
}

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 3, day, hour, minute, 0, 0, time.UTC)
}

func TestReconcile_MatchesPaddedAndPrefixedCodes(t *testing.T) {
	events := []attendance.RawClockEvent{
		{FingerID: "007", CheckTime: at(4, 8, 0)},
		{FingerID: "7", CheckTime: at(4, 17, 0)},
		{FingerID: "EMP007", CheckTime: at(4, 12, 0)},
	}

	windows := Reconcile(events, testRoster(), periodStart, periodEnd)

	require.Len(t, windows, 1)
	key := attendance.DayKey{Identity: "emp-7", Date: at(4, 0, 0)}
	window, ok := windows[key]
	require.True(t, ok)
	assert.Equal(t, at(4, 8, 0), window.MinTime)
	assert.Equal(t, at(4, 17, 0), window.MaxTime)
}

func TestReconcile_UnmatchedCodeBecomesPlaceholder(t *testing.T) {
	events := []attendance.RawClockEvent{
		{FingerID: "999", CheckTime: at(5, 9, 0)},
	}

	windows := Reconcile(events, testRoster(), periodStart, periodEnd)

	require.Len(t, windows, 1)
	key := attendance.DayKey{Identity: "finger:999", Date: at(5, 0, 0)}
	_, ok := windows[key]
	assert.True(t, ok)
	assert.True(t, IsUnlinked("finger:999"))
	assert.False(t, IsUnlinked("emp-7"))
}

func TestReconcile_FiltersOutsidePeriod(t *testing.T) {
	events := []attendance.RawClockEvent{
		{FingerID: "007", CheckTime: time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)},
		{FingerID: "007", CheckTime: periodEnd},
		{FingerID: "007", CheckTime: at(15, 9, 0)},
	}

	windows := Reconcile(events, testRoster(), periodStart, periodEnd)

	require.Len(t, windows, 1)
	key := attendance.DayKey{Identity: "emp-7", Date: at(15, 0, 0)}
	_, ok := windows[key]
	assert.True(t, ok)
}

func TestReconcile_GroupsByUTCDay(t *testing.T) {
	events := []attendance.RawClockEvent{
		{FingerID: "42", CheckTime: at(6, 8, 30)},
		{FingerID: "42", CheckTime: at(6, 18, 0)},
		{FingerID: "42", CheckTime: at(7, 8, 0)},
	}

	windows := Reconcile(events, testRoster(), periodStart, periodEnd)

	assert.Len(t, windows, 2)
	day6 := windows[attendance.DayKey{Identity: "emp-42", Date: at(6, 0, 0)}]
	assert.Equal(t, at(6, 8, 30), day6.MinTime)
	assert.Equal(t, at(6, 18, 0), day6.MaxTime)
}

func TestDeriveDaily(t *testing.T) {
	window := attendance.ClockWindow{
		MinTime: at(6, 8, 0),
		MaxTime: at(6, 18, 0),
	}

	hours, workValue, overtime := DeriveDaily(window)

	assert.True(t, decimal.NewFromInt(10).Equal(hours), "hours = %s", hours)
	assert.True(t, decimal.NewFromInt(1).Equal(workValue), "work value = %s", workValue)
	assert.True(t, decimal.NewFromInt(2).Equal(overtime), "overtime = %s", overtime)
}

func TestDeriveDaily_HalfDay(t *testing.T) {
	window := attendance.ClockWindow{
		MinTime: at(6, 8, 0),
		MaxTime: at(6, 12, 0),
	}

	hours, workValue, overtime := DeriveDaily(window)

	assert.True(t, decimal.NewFromInt(4).Equal(hours))
	assert.True(t, decimal.New(5, -1).Equal(workValue), "work value = %s", workValue)
	assert.True(t, overtime.IsZero())
}

func TestDeriveDaily_SingleEventYieldsZero(t *testing.T) {
	window := attendance.ClockWindow{
		MinTime: at(6, 8, 0),
		MaxTime: at(6, 8, 0),
	}

	hours, workValue, overtime := DeriveDaily(window)

	assert.True(t, hours.IsZero())
	assert.True(t, workValue.IsZero())
	assert.True(t, overtime.IsZero())
}

func TestNormalizeNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"007", "7"},
		{"7", "7"},
		{"000", "0"},
		{"0", "0"},
		{"1200", "1200"},
	}
	for _, c := range cases {
		got := normalizeNumeric(c.input)
		if got != c.want {
			t.Errorf("normalizeNumeric(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestStripNonDigits(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"EMP007", "007"},
		{"42", "42"},
		{"A-1-B2", "12"},
		{"ABC", ""},
	}
	for _, c := range cases {
		got := stripNonDigits(c.input)
		if got != c.want {
			t.Errorf("stripNonDigits(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
