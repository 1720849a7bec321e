package payroll

import "context"

// Repository persists computed payroll rows. Batch writes run inside a
// single transaction so the conflict protocol applies to the whole set.
type Repository interface {
	// InsertBatch inserts all records; any uniqueness violation on
	// (employee_id, period_month, period_year) maps to
	// ErrPayrollRecordExists and nothing is written.
	InsertBatch(ctx context.Context, records []Record) error
	// UpsertBatch inserts or replaces on the period key.
	UpsertBatch(ctx context.Context, records []Record) error
	// CountExisting reports how many of the given employees already have a
	// record for the period.
	CountExisting(ctx context.Context, year, month int, employeeIDs []string) (int, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (Record, error)
	ListByPeriod(ctx context.Context, year, month int) ([]Record, error)
	GetSummary(ctx context.Context, year, month int) (PayrollSummaryResponse, error)
}
