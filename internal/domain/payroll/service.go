package payroll

import "context"

// Service is the payroll batch engine surface.
type Service interface {
	// Generate computes one record per active employee for the period.
	// It fails outright when no regulation applies; individual employees
	// whose attendance cannot be fetched are skipped.
	Generate(ctx context.Context, req GeneratePayrollRequest) ([]RecordPayload, error)
	// Save persists a generated batch. Without overwrite a period clash
	// returns *ConflictError carrying the would-be-overwritten count.
	Save(ctx context.Context, req SavePayrollRequest) (SavePayrollResponse, error)
	ListRecords(ctx context.Context, year, month int) ([]RecordPayload, error)
	GetSummary(ctx context.Context, year, month int) (PayrollSummaryResponse, error)
}
