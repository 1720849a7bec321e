package attendance

import (
	"context"
	"time"
)

// Repository provides the attendance rows and the raw device feed.
type Repository interface {
	// GetForEmployeePeriod returns the structured rows for one employee in
	// (year, month).
	GetForEmployeePeriod(ctx context.Context, employeeID string, year, month int) ([]Record, error)
	// GetRawClockEvents returns device events with check_time in
	// [periodStart, periodEnd).
	GetRawClockEvents(ctx context.Context, periodStart, periodEnd time.Time) ([]RawClockEvent, error)
	// CountForPeriod returns per-employee row counts for (year, month);
	// used by the pre-payday warm-up job to flag silent clock feeds.
	CountForPeriod(ctx context.Context, year, month int) (map[string]int, error)
}
