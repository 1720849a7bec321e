package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/domain/employee"
	"github.com/palmahr/payroll-engine-go/internal/domain/notification"
	"github.com/palmahr/payroll-engine-go/internal/domain/payroll"
	"github.com/palmahr/payroll-engine-go/internal/pkg/validator"
	attendanceService "github.com/palmahr/payroll-engine-go/internal/service/attendance"
	regulationService "github.com/palmahr/payroll-engine-go/internal/service/regulation"
	"golang.org/x/sync/errgroup"
)

type ServiceImpl struct {
	payrollRepo    payroll.Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	resolver       *regulationService.Resolver
	notifier       notification.Emitter
	workers        int
}

func NewPayrollService(
	payrollRepo payroll.Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	resolver *regulationService.Resolver,
	notifier notification.Emitter,
	workers int,
) payroll.Service {
	if workers < 1 {
		workers = 1
	}
	return &ServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		resolver:       resolver,
		notifier:       notifier,
		workers:        workers,
	}
}

// Generate computes one payroll record per active employee for the period.
// The regulation is resolved once for the whole batch; employees whose
// attendance cannot be fetched are skipped with a warning so one bad feed
// never blocks everyone else's payroll.
func (s *ServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.RecordPayload, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reg, err := s.resolver.Resolve(ctx, req.PeriodYear, req.PeriodMonth)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active employees: %w", err)
	}

	// Per-employee work is independent; the group limit keeps the
	// parallel attendance fetches from exhausting database connections.
	results := make([]*payroll.Record, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			rows, err := s.attendanceRepo.GetForEmployeePeriod(gctx, emp.ID, req.PeriodYear, req.PeriodMonth)
			if err != nil {
				slog.Warn("skipping employee: attendance fetch failed",
					"employee_id", emp.ID,
					"employee_code", emp.EmployeeCode,
					"year", req.PeriodYear,
					"month", req.PeriodMonth,
					"error", err,
				)
				return nil
			}

			totals := attendanceService.AggregateByStatus(rows)
			record := Compute(emp, reg, totals)
			record.PeriodYear = req.PeriodYear
			record.PeriodMonth = req.PeriodMonth
			record.EmployeeName = &emp.FullName
			record.EmployeeCode = &emp.EmployeeCode

			results[i] = &record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payloads := make([]payroll.RecordPayload, 0, len(employees))
	for _, record := range results {
		if record == nil {
			continue
		}
		payloads = append(payloads, payroll.ToPayload(*record))
	}

	return payloads, nil
}

// Save persists a generated batch as a single write. A plain save that
// collides with existing records for the period returns *ConflictError
// so the caller can confirm the overwrite explicitly.
func (s *ServiceImpl) Save(ctx context.Context, req payroll.SavePayrollRequest) (payroll.SavePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SavePayrollResponse{}, err
	}

	year := req.Records[0].PeriodYear
	month := req.Records[0].PeriodMonth
	for _, rec := range req.Records {
		if rec.PeriodYear != year || rec.PeriodMonth != month {
			return payroll.SavePayrollResponse{}, validator.ValidationErrors{
				{Field: "records", Message: "all records must belong to the same period"},
			}
		}
	}

	records := make([]payroll.Record, 0, len(req.Records))
	employeeIDs := make([]string, 0, len(req.Records))
	for _, p := range req.Records {
		rec := payroll.FromPayload(p)
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		records = append(records, rec)
		employeeIDs = append(employeeIDs, rec.EmployeeID)
	}

	if req.Overwrite {
		if err := s.payrollRepo.UpsertBatch(ctx, records); err != nil {
			return payroll.SavePayrollResponse{}, fmt.Errorf("failed to upsert payroll records: %w", err)
		}
	} else {
		err := s.payrollRepo.InsertBatch(ctx, records)
		if errors.Is(err, payroll.ErrPayrollRecordExists) {
			count, cErr := s.payrollRepo.CountExisting(ctx, year, month, employeeIDs)
			if cErr != nil {
				return payroll.SavePayrollResponse{}, fmt.Errorf("failed to count conflicting payroll records: %w", cErr)
			}
			return payroll.SavePayrollResponse{}, &payroll.ConflictError{Count: count}
		}
		if err != nil {
			return payroll.SavePayrollResponse{}, fmt.Errorf("failed to insert payroll records: %w", err)
		}
	}

	// Best effort: payroll integrity never depends on notifications.
	s.notifier.Emit(ctx, notification.KindPayrollSaved, map[string]interface{}{
		"period_year":  year,
		"period_month": month,
		"saved_count":  len(records),
		"overwrite":    req.Overwrite,
	})

	return payroll.SavePayrollResponse{Success: true, SavedCount: len(records)}, nil
}

func (s *ServiceImpl) ListRecords(ctx context.Context, year, month int) ([]payroll.RecordPayload, error) {
	if !validator.IsValidPeriod(month, year) {
		return nil, validator.ValidationErrors{
			{Field: "period", Message: "invalid payroll period"},
		}
	}

	records, err := s.payrollRepo.ListByPeriod(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	payloads := make([]payroll.RecordPayload, 0, len(records))
	for _, rec := range records {
		payloads = append(payloads, payroll.ToPayload(rec))
	}
	return payloads, nil
}

func (s *ServiceImpl) GetSummary(ctx context.Context, year, month int) (payroll.PayrollSummaryResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return payroll.PayrollSummaryResponse{}, validator.ValidationErrors{
			{Field: "period", Message: "invalid payroll period"},
		}
	}

	summary, err := s.payrollRepo.GetSummary(ctx, year, month)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}
	return summary, nil
}
