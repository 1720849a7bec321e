package attendance

import (
	"strings"
	"time"

	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// UnlinkedPrefix tags clock events whose device code matched no employee.
// They surface as pseudo-employees in the summary instead of being
// dropped.
const UnlinkedPrefix = "finger:"

var (
	eight = decimal.NewFromInt(8)
	one   = decimal.NewFromInt(1)
	sixty = decimal.NewFromInt(60)
)

// stripNonDigits keeps only the digit characters of s.
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeNumeric trims leading zeros so "007" and "7" collide. All-zero
// input stays "0".
func normalizeNumeric(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// buildRosterIndex indexes every employee under both the raw digit string
// of its code and the zero-trimmed numeric form. The device feed and HR
// records drift on padding, so both spellings must hit.
func buildRosterIndex(roster []employee.Profile) map[string]employee.Profile {
	index := make(map[string]employee.Profile, len(roster)*2)
	for _, emp := range roster {
		digits := stripNonDigits(emp.EmployeeCode)
		if digits == "" {
			continue
		}
		index[digits] = emp
		index[normalizeNumeric(digits)] = emp
	}
	return index
}

// Reconcile maps raw clock events to employee identities and produces the
// min/max event window per (identity, UTC calendar day). Events inside
// [periodStart, periodEnd) are considered; events whose device code
// resolves to no employee are kept under a "finger:<id>" placeholder.
func Reconcile(
	rawEvents []attendance.RawClockEvent,
	roster []employee.Profile,
	periodStart, periodEnd time.Time,
) map[attendance.DayKey]attendance.ClockWindow {
	index := buildRosterIndex(roster)
	out := make(map[attendance.DayKey]attendance.ClockWindow)

	for _, ev := range rawEvents {
		if ev.CheckTime.Before(periodStart) || !ev.CheckTime.Before(periodEnd) {
			continue
		}

		identity := UnlinkedPrefix + strings.TrimSpace(ev.FingerID)
		digits := stripNonDigits(ev.FingerID)
		if digits != "" {
			if emp, ok := index[digits]; ok {
				identity = emp.ID
			} else if emp, ok := index[normalizeNumeric(digits)]; ok {
				identity = emp.ID
			}
		}

		ts := ev.CheckTime.UTC()
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		key := attendance.DayKey{Identity: identity, Date: day}

		window, ok := out[key]
		if !ok {
			out[key] = attendance.ClockWindow{MinTime: ev.CheckTime, MaxTime: ev.CheckTime}
			continue
		}
		if ev.CheckTime.Before(window.MinTime) {
			window.MinTime = ev.CheckTime
		}
		if ev.CheckTime.After(window.MaxTime) {
			window.MaxTime = ev.CheckTime
		}
		out[key] = window
	}

	return out
}

// DeriveDaily converts a clock window into the summary-view figures:
// worked hours, a work value clamped to [0, 1] against an 8-hour day, and
// the hours beyond 8 as overtime.
func DeriveDaily(window attendance.ClockWindow) (hours, workValue, overtimeHours decimal.Decimal) {
	minutes := int64(window.MaxTime.Sub(window.MinTime) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}
	hours = decimal.NewFromInt(minutes).Div(sixty)

	workValue = hours.Div(eight)
	if workValue.GreaterThan(one) {
		workValue = one
	}
	if workValue.IsNegative() {
		workValue = decimal.Zero
	}

	overtimeHours = hours.Sub(eight)
	if overtimeHours.IsNegative() {
		overtimeHours = decimal.Zero
	}
	return hours, workValue, overtimeHours
}

// IsUnlinked reports whether an identity is a synthesized placeholder.
func IsUnlinked(identity string) bool {
	return strings.HasPrefix(identity, UnlinkedPrefix)
}
