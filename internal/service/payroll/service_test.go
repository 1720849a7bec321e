package payroll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/domain/employee"
	"github.com/palmahr/payroll-engine-go/internal/domain/notification"
	"github.com/palmahr/payroll-engine-go/internal/domain/payroll"
	"github.com/palmahr/payroll-engine-go/internal/domain/regulation"
	regulationService "github.com/palmahr/payroll-engine-go/internal/service/regulation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes. The batch writer's conflict protocol is pure
// coordination logic, so it is tested against these instead of a live
// database.

type fakeEmployeeRepo struct {
	profiles []employee.Profile
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Profile, error) {
	return f.profiles, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return employee.Profile{}, employee.ErrEmployeeNotFound
}

type fakeAttendanceRepo struct {
	rows    map[string][]attendance.Record
	failFor map[string]bool
}

func (f *fakeAttendanceRepo) GetForEmployeePeriod(ctx context.Context, employeeID string, year, month int) ([]attendance.Record, error) {
	if f.failFor[employeeID] {
		return nil, fmt.Errorf("attendance source unavailable for %s", employeeID)
	}
	return f.rows[employeeID], nil
}

func (f *fakeAttendanceRepo) GetRawClockEvents(ctx context.Context, periodStart, periodEnd time.Time) ([]attendance.RawClockEvent, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) CountForPeriod(ctx context.Context, year, month int) (map[string]int, error) {
	counts := make(map[string]int)
	for id, rows := range f.rows {
		counts[id] = len(rows)
	}
	return counts, nil
}

type fakeRegulationRepo struct {
	regs []regulation.SalaryRegulation
}

func (f *fakeRegulationRepo) GetLatestEffective(ctx context.Context, onOrBefore time.Time) (regulation.SalaryRegulation, error) {
	var best *regulation.SalaryRegulation
	for i := range f.regs {
		reg := f.regs[i]
		if reg.EffectiveDate.After(onOrBefore) {
			continue
		}
		if best == nil || reg.EffectiveDate.After(best.EffectiveDate) {
			best = &f.regs[i]
		}
	}
	if best == nil {
		return regulation.SalaryRegulation{}, regulation.ErrNoApplicableRegulation
	}
	return *best, nil
}

func (f *fakeRegulationRepo) Create(ctx context.Context, reg regulation.SalaryRegulation) (regulation.SalaryRegulation, error) {
	f.regs = append(f.regs, reg)
	return reg, nil
}

func (f *fakeRegulationRepo) List(ctx context.Context) ([]regulation.SalaryRegulation, error) {
	return f.regs, nil
}

type periodKey struct {
	employeeID string
	year       int
	month      int
}

type fakePayrollRepo struct {
	mu      sync.Mutex
	records map[periodKey]payroll.Record
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[periodKey]payroll.Record)}
}

func keyOf(rec payroll.Record) periodKey {
	return periodKey{employeeID: rec.EmployeeID, year: rec.PeriodYear, month: rec.PeriodMonth}
}

func (f *fakePayrollRepo) InsertBatch(ctx context.Context, records []payroll.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(records) == 0 {
		return payroll.ErrEmptyBatch
	}
	for _, rec := range records {
		if _, ok := f.records[keyOf(rec)]; ok {
			return payroll.ErrPayrollRecordExists
		}
	}
	for _, rec := range records {
		f.records[keyOf(rec)] = rec
	}
	return nil
}

func (f *fakePayrollRepo) UpsertBatch(ctx context.Context, records []payroll.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(records) == 0 {
		return payroll.ErrEmptyBatch
	}
	for _, rec := range records {
		f.records[keyOf(rec)] = rec
	}
	return nil
}

func (f *fakePayrollRepo) CountExisting(ctx context.Context, year, month int, employeeIDs []string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, id := range employeeIDs {
		if _, ok := f.records[periodKey{employeeID: id, year: year, month: month}]; ok {
			count++
		}
	}
	return count, nil
}

func (f *fakePayrollRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (payroll.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[periodKey{employeeID: employeeID, year: year, month: month}]
	if !ok {
		return payroll.Record{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

func (f *fakePayrollRepo) ListByPeriod(ctx context.Context, year, month int) ([]payroll.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []payroll.Record
	for key, rec := range f.records {
		if key.year == year && key.month == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) GetSummary(ctx context.Context, year, month int) (payroll.PayrollSummaryResponse, error) {
	records, _ := f.ListByPeriod(ctx, year, month)
	summary := payroll.PayrollSummaryResponse{PeriodYear: year, PeriodMonth: month}
	for _, rec := range records {
		summary.TotalEmployees++
		summary.TotalGrossIncome = summary.TotalGrossIncome.Add(rec.GrossIncome)
		summary.TotalNetSalary = summary.TotalNetSalary.Add(rec.NetSalary)
	}
	return summary, nil
}

type fakeEmitter struct {
	mu     sync.Mutex
	events []notification.EventKind
}

func (f *fakeEmitter) Emit(ctx context.Context, kind notification.EventKind, payload map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, kind)
}

func fullMonthRows() []attendance.Record {
	rows := make([]attendance.Record, 0, 22)
	for i := 0; i < 22; i++ {
		rows = append(rows, attendance.Record{
			Status:    attendance.StatusPresentFull,
			WorkValue: decimal.NewFromInt(1),
		})
	}
	return rows
}

func testService(employees []employee.Profile, att *fakeAttendanceRepo) (payroll.Service, *fakePayrollRepo, *fakeEmitter) {
	payrollRepo := newFakePayrollRepo()
	emitter := &fakeEmitter{}
	resolver := regulationService.NewResolver(&fakeRegulationRepo{
		regs: []regulation.SalaryRegulation{{
			ID:            "reg-1",
			Name:          "standard",
			EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
	})
	svc := NewPayrollService(payrollRepo, &fakeEmployeeRepo{profiles: employees}, att, resolver, emitter, 4)
	return svc, payrollRepo, emitter
}

func TestGenerate_ComputesBatchInRosterOrder(t *testing.T) {
	employees := []employee.Profile{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "A", BaseSalary: decimal.NewFromInt(22_000_000)},
		{ID: "emp-2", EmployeeCode: "EMP002", FullName: "B", BaseSalary: decimal.NewFromInt(11_000_000)},
	}
	att := &fakeAttendanceRepo{rows: map[string][]attendance.Record{
		"emp-1": fullMonthRows(),
		"emp-2": fullMonthRows(),
	}}
	svc, _, _ := testService(employees, att)

	payloads, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{PeriodYear: 2024, PeriodMonth: 3})
	require.NoError(t, err)
	require.Len(t, payloads, 2)

	assert.Equal(t, "emp-1", payloads[0].EmployeeID)
	assert.Equal(t, "emp-2", payloads[1].EmployeeID)
	assert.Equal(t, 2024, payloads[0].PeriodYear)
	assert.Equal(t, 3, payloads[0].PeriodMonth)
	assert.True(t, decimal.NewFromInt(22_000_000).Equal(payloads[0].GrossIncome))
	assert.Equal(t, "EMP001", payloads[0].EmployeeCode)
}

func TestGenerate_SkipsEmployeeWhoseAttendanceFails(t *testing.T) {
	employees := []employee.Profile{
		{ID: "emp-1", EmployeeCode: "EMP001", BaseSalary: decimal.NewFromInt(22_000_000)},
		{ID: "emp-2", EmployeeCode: "EMP002", BaseSalary: decimal.NewFromInt(11_000_000)},
	}
	att := &fakeAttendanceRepo{
		rows:    map[string][]attendance.Record{"emp-2": fullMonthRows()},
		failFor: map[string]bool{"emp-1": true},
	}
	svc, _, _ := testService(employees, att)

	payloads, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{PeriodYear: 2024, PeriodMonth: 3})
	require.NoError(t, err)
	require.Len(t, payloads, 1)
	assert.Equal(t, "emp-2", payloads[0].EmployeeID)
}

func TestGenerate_NoRegulationIsFatal(t *testing.T) {
	employees := []employee.Profile{{ID: "emp-1", BaseSalary: decimal.NewFromInt(10_000_000)}}
	att := &fakeAttendanceRepo{rows: map[string][]attendance.Record{"emp-1": fullMonthRows()}}

	payrollRepo := newFakePayrollRepo()
	resolver := regulationService.NewResolver(&fakeRegulationRepo{})
	svc := NewPayrollService(payrollRepo, &fakeEmployeeRepo{profiles: employees}, att, resolver, &fakeEmitter{}, 4)

	_, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{PeriodYear: 2024, PeriodMonth: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, regulation.ErrNoApplicableRegulation)
	assert.Contains(t, err.Error(), "2024-03")
}

func TestGenerate_InvalidPeriod(t *testing.T) {
	svc, _, _ := testService(nil, &fakeAttendanceRepo{})

	_, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{PeriodYear: 2024, PeriodMonth: 13})
	require.Error(t, err)
}

func savedBatch(year, month int, employeeIDs ...string) payroll.SavePayrollRequest {
	req := payroll.SavePayrollRequest{}
	for _, id := range employeeIDs {
		req.Records = append(req.Records, payroll.RecordPayload{
			EmployeeID:  id,
			PeriodYear:  year,
			PeriodMonth: month,
			NetSalary:   decimal.NewFromInt(9_000_000),
		})
	}
	return req
}

func TestSave_InsertsNewBatch(t *testing.T) {
	svc, repo, emitter := testService(nil, &fakeAttendanceRepo{})

	resp, err := svc.Save(context.Background(), savedBatch(2024, 3, "emp-1", "emp-2"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.SavedCount)

	records, err := repo.ListByPeriod(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	for _, rec := range records {
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, payroll.StatusPending, rec.Status)
	}

	require.Len(t, emitter.events, 1)
	assert.Equal(t, notification.KindPayrollSaved, emitter.events[0])
}

func TestSave_ConflictReportsOverwriteCount(t *testing.T) {
	svc, _, _ := testService(nil, &fakeAttendanceRepo{})

	_, err := svc.Save(context.Background(), savedBatch(2024, 3, "emp-1", "emp-2"))
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), savedBatch(2024, 3, "emp-1", "emp-2", "emp-3"))
	require.Error(t, err)

	var conflict *payroll.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, 2, conflict.Count)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordExists)
}

func TestSave_ConflictWritesNothing(t *testing.T) {
	svc, repo, _ := testService(nil, &fakeAttendanceRepo{})

	_, err := svc.Save(context.Background(), savedBatch(2024, 3, "emp-1"))
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), savedBatch(2024, 3, "emp-1", "emp-3"))
	require.Error(t, err)

	// The rejected batch must not have written emp-3.
	_, err = repo.GetByEmployeePeriod(context.Background(), "emp-3", 2024, 3)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestSave_OverwriteReplacesExisting(t *testing.T) {
	svc, repo, _ := testService(nil, &fakeAttendanceRepo{})

	_, err := svc.Save(context.Background(), savedBatch(2024, 3, "emp-1"))
	require.NoError(t, err)

	req := savedBatch(2024, 3, "emp-1")
	req.Records[0].NetSalary = decimal.NewFromInt(12_000_000)
	req.Overwrite = true

	resp, err := svc.Save(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SavedCount)

	rec, err := repo.GetByEmployeePeriod(context.Background(), "emp-1", 2024, 3)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12_000_000).Equal(rec.NetSalary))

	records, err := repo.ListByPeriod(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSave_OverwriteIsIdempotent(t *testing.T) {
	svc, repo, _ := testService(nil, &fakeAttendanceRepo{})

	req := savedBatch(2024, 3, "emp-1", "emp-2")
	req.Overwrite = true

	for i := 0; i < 3; i++ {
		resp, err := svc.Save(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.SavedCount)
	}

	records, err := repo.ListByPeriod(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSave_RejectsEmptyBatch(t *testing.T) {
	svc, _, _ := testService(nil, &fakeAttendanceRepo{})

	_, err := svc.Save(context.Background(), payroll.SavePayrollRequest{})
	require.Error(t, err)
}

func TestSave_RejectsMixedPeriods(t *testing.T) {
	svc, _, _ := testService(nil, &fakeAttendanceRepo{})

	req := savedBatch(2024, 3, "emp-1")
	other := savedBatch(2024, 4, "emp-2")
	req.Records = append(req.Records, other.Records...)

	_, err := svc.Save(context.Background(), req)
	require.Error(t, err)
}

func TestGenerateThenSave_RoundTrip(t *testing.T) {
	employees := []employee.Profile{
		{ID: "emp-1", EmployeeCode: "EMP001", FullName: "A", BaseSalary: decimal.NewFromInt(22_000_000)},
	}
	att := &fakeAttendanceRepo{rows: map[string][]attendance.Record{"emp-1": fullMonthRows()}}
	svc, repo, _ := testService(employees, att)

	payloads, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{PeriodYear: 2024, PeriodMonth: 3})
	require.NoError(t, err)

	resp, err := svc.Save(context.Background(), payroll.SavePayrollRequest{Records: payloads})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SavedCount)

	rec, err := repo.GetByEmployeePeriod(context.Background(), "emp-1", 2024, 3)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(22_000_000).Equal(rec.GrossIncome))
}
