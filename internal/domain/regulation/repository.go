package regulation

import (
	"context"
	"time"
)

// Repository provides append-only access to regulation versions.
type Repository interface {
	// GetLatestEffective returns the regulation with the greatest
	// effective_date <= onOrBefore, or ErrNoApplicableRegulation.
	GetLatestEffective(ctx context.Context, onOrBefore time.Time) (SalaryRegulation, error)
	Create(ctx context.Context, reg SalaryRegulation) (SalaryRegulation, error)
	List(ctx context.Context) ([]SalaryRegulation, error)
}
