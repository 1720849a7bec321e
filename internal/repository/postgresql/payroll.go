package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/palmahr/payroll-engine-go/internal/domain/payroll"
	"github.com/palmahr/payroll-engine-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

const payrollInsertColumns = `
	id, employee_id, period_month, period_year,
	base_salary, actual_working_days, weekday_overtime_days, weekend_overtime_days,
	actual_base_salary, weekday_overtime_pay, weekend_overtime_pay, total_overtime_pay,
	total_allowances, gross_income,
	social_insurance, health_insurance, unemployment_insurance, union_fee,
	employee_insurance_total, company_insurance_total,
	taxable_income, income_tax, total_deductions, net_salary, status
`

const payrollInsertPlaceholders = `
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
	$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
`

func payrollInsertArgs(rec payroll.Record) []interface{} {
	return []interface{}{
		rec.ID, rec.EmployeeID, rec.PeriodMonth, rec.PeriodYear,
		rec.BaseSalary, rec.ActualWorkingDays, rec.WeekdayOvertimeDays, rec.WeekendOvertimeDays,
		rec.ActualBaseSalary, rec.WeekdayOvertimePay, rec.WeekendOvertimePay, rec.TotalOvertimePay,
		rec.TotalAllowances, rec.GrossIncome,
		rec.SocialInsurance, rec.HealthInsurance, rec.UnemploymentInsurance, rec.UnionFee,
		rec.EmployeeInsuranceTotal, rec.CompanyInsuranceTotal,
		rec.TaxableIncome, rec.IncomeTax, rec.TotalDeductions, rec.NetSalary, rec.Status,
	}
}

// InsertBatch writes the whole batch in one transaction. Any uniqueness
// violation on (employee_id, period_month, period_year) rolls everything
// back and maps to ErrPayrollRecordExists so the caller can run the
// overwrite confirmation protocol.
func (r *payrollRepository) InsertBatch(ctx context.Context, records []payroll.Record) error {
	if len(records) == 0 {
		return payroll.ErrEmptyBatch
	}

	query := fmt.Sprintf(`
		INSERT INTO payroll_records (%s) VALUES (%s)
	`, payrollInsertColumns, payrollInsertPlaceholders)

	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		for _, rec := range records {
			if _, err := q.Exec(txCtx, query, payrollInsertArgs(rec)...); err != nil {
				if isUniqueViolation(err) {
					return payroll.ErrPayrollRecordExists
				}
				return fmt.Errorf("failed to insert payroll record for employee %s: %w", rec.EmployeeID, err)
			}
		}
		return nil
	})
}

// UpsertBatch replaces records on the period key. Applying the same batch
// twice leaves the same stored state.
func (r *payrollRepository) UpsertBatch(ctx context.Context, records []payroll.Record) error {
	if len(records) == 0 {
		return payroll.ErrEmptyBatch
	}

	query := fmt.Sprintf(`
		INSERT INTO payroll_records (%s) VALUES (%s)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			actual_working_days = EXCLUDED.actual_working_days,
			weekday_overtime_days = EXCLUDED.weekday_overtime_days,
			weekend_overtime_days = EXCLUDED.weekend_overtime_days,
			actual_base_salary = EXCLUDED.actual_base_salary,
			weekday_overtime_pay = EXCLUDED.weekday_overtime_pay,
			weekend_overtime_pay = EXCLUDED.weekend_overtime_pay,
			total_overtime_pay = EXCLUDED.total_overtime_pay,
			total_allowances = EXCLUDED.total_allowances,
			gross_income = EXCLUDED.gross_income,
			social_insurance = EXCLUDED.social_insurance,
			health_insurance = EXCLUDED.health_insurance,
			unemployment_insurance = EXCLUDED.unemployment_insurance,
			union_fee = EXCLUDED.union_fee,
			employee_insurance_total = EXCLUDED.employee_insurance_total,
			company_insurance_total = EXCLUDED.company_insurance_total,
			taxable_income = EXCLUDED.taxable_income,
			income_tax = EXCLUDED.income_tax,
			total_deductions = EXCLUDED.total_deductions,
			net_salary = EXCLUDED.net_salary,
			status = EXCLUDED.status,
			updated_at = NOW()
	`, payrollInsertColumns, payrollInsertPlaceholders)

	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		for _, rec := range records {
			if _, err := q.Exec(txCtx, query, payrollInsertArgs(rec)...); err != nil {
				return fmt.Errorf("failed to upsert payroll record for employee %s: %w", rec.EmployeeID, err)
			}
		}
		return nil
	})
}

func (r *payrollRepository) CountExisting(ctx context.Context, year, month int, employeeIDs []string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM payroll_records
		WHERE period_year = $1 AND period_month = $2 AND employee_id = ANY($3)
	`

	var count int
	if err := q.QueryRow(ctx, query, year, month, employeeIDs).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count existing payroll records: %w", err)
	}

	return count, nil
}

const payrollSelectColumns = `
	pr.id, pr.employee_id, pr.period_month, pr.period_year,
	pr.base_salary, pr.actual_working_days, pr.weekday_overtime_days, pr.weekend_overtime_days,
	pr.actual_base_salary, pr.weekday_overtime_pay, pr.weekend_overtime_pay, pr.total_overtime_pay,
	pr.total_allowances, pr.gross_income,
	pr.social_insurance, pr.health_insurance, pr.unemployment_insurance, pr.union_fee,
	pr.employee_insurance_total, pr.company_insurance_total,
	pr.taxable_income, pr.income_tax, pr.total_deductions, pr.net_salary,
	pr.status, pr.paid_at, pr.paid_by, pr.created_at, pr.updated_at,
	e.full_name, e.employee_code
`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.BaseSalary, &rec.ActualWorkingDays, &rec.WeekdayOvertimeDays, &rec.WeekendOvertimeDays,
		&rec.ActualBaseSalary, &rec.WeekdayOvertimePay, &rec.WeekendOvertimePay, &rec.TotalOvertimePay,
		&rec.TotalAllowances, &rec.GrossIncome,
		&rec.SocialInsurance, &rec.HealthInsurance, &rec.UnemploymentInsurance, &rec.UnionFee,
		&rec.EmployeeInsuranceTotal, &rec.CompanyInsuranceTotal,
		&rec.TaxableIncome, &rec.IncomeTax, &rec.TotalDeductions, &rec.NetSalary,
		&rec.Status, &rec.PaidAt, &rec.PaidBy, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode,
	)
	return rec, err
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.employee_id = $1 AND pr.period_year = $2 AND pr.period_month = $3
	`, payrollSelectColumns)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, year, month int) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.period_year = $1 AND pr.period_month = $2
		ORDER BY e.employee_code
	`, payrollSelectColumns)

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *payrollRepository) GetSummary(ctx context.Context, year, month int) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(gross_income), 0),
			COALESCE(SUM(total_overtime_pay), 0),
			COALESCE(SUM(total_allowances), 0),
			COALESCE(SUM(employee_insurance_total), 0),
			COALESCE(SUM(income_tax), 0),
			COALESCE(SUM(net_salary), 0),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'paid')
		FROM payroll_records
		WHERE period_year = $1 AND period_month = $2
	`

	summary := payroll.PayrollSummaryResponse{PeriodYear: year, PeriodMonth: month}
	err := q.QueryRow(ctx, query, year, month).Scan(
		&summary.TotalEmployees,
		&summary.TotalGrossIncome,
		&summary.TotalOvertimePay,
		&summary.TotalAllowances,
		&summary.TotalInsuranceCharged,
		&summary.TotalIncomeTax,
		&summary.TotalNetSalary,
		&summary.PendingCount,
		&summary.PaidCount,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return summary, nil
}
