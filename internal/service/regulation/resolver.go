package regulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/palmahr/payroll-engine-go/internal/domain/regulation"
)

// Resolver selects the single regulation version effective for a pay
// period. Injected into the batch run so computation stays testable; there
// is no module-level "latest regulation" cache.
type Resolver struct {
	regulationRepo regulation.Repository
}

func NewResolver(regulationRepo regulation.Repository) *Resolver {
	return &Resolver{regulationRepo: regulationRepo}
}

// Resolve returns the regulation with the greatest effective_date on or
// before the first day of (year, month), with the standard defaults merged
// in. A missing regulation is fatal for the whole batch.
func (r *Resolver) Resolve(ctx context.Context, year, month int) (regulation.SalaryRegulation, error) {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	reg, err := r.regulationRepo.GetLatestEffective(ctx, firstDay)
	if err != nil {
		if errors.Is(err, regulation.ErrNoApplicableRegulation) {
			return regulation.SalaryRegulation{}, fmt.Errorf("no salary regulation configured for period %04d-%02d: %w", year, month, err)
		}
		return regulation.SalaryRegulation{}, fmt.Errorf("failed to resolve salary regulation: %w", err)
	}

	return regulation.ApplyDefaults(reg, regulation.StandardDefaults()), nil
}
