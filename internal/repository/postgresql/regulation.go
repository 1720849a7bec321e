package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/palmahr/payroll-engine-go/internal/domain/regulation"
	"github.com/palmahr/payroll-engine-go/internal/pkg/database"
)

type regulationRepository struct {
	db *database.DB
}

func NewRegulationRepository(db *database.DB) regulation.Repository {
	return &regulationRepository{db: db}
}

const regulationColumns = `
	id, name, effective_date,
	working_days_per_month, working_hours_per_day, max_hours_per_day,
	overtime_weekday_rate, overtime_weekend_rate, overtime_holiday_rate, overtime_night_rate,
	social_insurance_rate, health_insurance_rate, unemployment_insurance_rate, union_fee_rate,
	company_social_insurance_rate, company_health_insurance_rate,
	company_unemployment_insurance_rate, company_union_fee_rate,
	max_insurance_salary, personal_deduction, dependent_deduction, enable_progressive_tax,
	created_at, updated_at
`

func scanRegulation(row pgx.Row) (regulation.SalaryRegulation, error) {
	var reg regulation.SalaryRegulation
	err := row.Scan(
		&reg.ID, &reg.Name, &reg.EffectiveDate,
		&reg.WorkingDaysPerMonth, &reg.WorkingHoursPerDay, &reg.MaxHoursPerDay,
		&reg.OvertimeWeekdayRate, &reg.OvertimeWeekendRate, &reg.OvertimeHolidayRate, &reg.OvertimeNightRate,
		&reg.SocialInsuranceRate, &reg.HealthInsuranceRate, &reg.UnemploymentInsuranceRate, &reg.UnionFeeRate,
		&reg.CompanySocialInsuranceRate, &reg.CompanyHealthInsuranceRate,
		&reg.CompanyUnemploymentInsuranceRate, &reg.CompanyUnionFeeRate,
		&reg.MaxInsuranceSalary, &reg.PersonalDeduction, &reg.DependentDeduction, &reg.EnableProgressiveTax,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	return reg, err
}

func (r *regulationRepository) GetLatestEffective(ctx context.Context, onOrBefore time.Time) (regulation.SalaryRegulation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_regulations
		WHERE effective_date <= $1
		ORDER BY effective_date DESC
		LIMIT 1
	`, regulationColumns)

	reg, err := scanRegulation(q.QueryRow(ctx, query, onOrBefore))
	if err != nil {
		if err == pgx.ErrNoRows {
			return regulation.SalaryRegulation{}, regulation.ErrNoApplicableRegulation
		}
		return regulation.SalaryRegulation{}, fmt.Errorf("failed to get effective regulation: %w", err)
	}

	return reg, nil
}

func (r *regulationRepository) Create(ctx context.Context, reg regulation.SalaryRegulation) (regulation.SalaryRegulation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO salary_regulations (
			name, effective_date,
			working_days_per_month, working_hours_per_day, max_hours_per_day,
			overtime_weekday_rate, overtime_weekend_rate, overtime_holiday_rate, overtime_night_rate,
			social_insurance_rate, health_insurance_rate, unemployment_insurance_rate, union_fee_rate,
			company_social_insurance_rate, company_health_insurance_rate,
			company_unemployment_insurance_rate, company_union_fee_rate,
			max_insurance_salary, personal_deduction, dependent_deduction, enable_progressive_tax
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING %s
	`, regulationColumns)

	created, err := scanRegulation(q.QueryRow(ctx, query,
		reg.Name, reg.EffectiveDate,
		reg.WorkingDaysPerMonth, reg.WorkingHoursPerDay, reg.MaxHoursPerDay,
		reg.OvertimeWeekdayRate, reg.OvertimeWeekendRate, reg.OvertimeHolidayRate, reg.OvertimeNightRate,
		reg.SocialInsuranceRate, reg.HealthInsuranceRate, reg.UnemploymentInsuranceRate, reg.UnionFeeRate,
		reg.CompanySocialInsuranceRate, reg.CompanyHealthInsuranceRate,
		reg.CompanyUnemploymentInsuranceRate, reg.CompanyUnionFeeRate,
		reg.MaxInsuranceSalary, reg.PersonalDeduction, reg.DependentDeduction, reg.EnableProgressiveTax,
	))
	if err != nil {
		return regulation.SalaryRegulation{}, fmt.Errorf("failed to create regulation: %w", err)
	}

	return created, nil
}

func (r *regulationRepository) List(ctx context.Context) ([]regulation.SalaryRegulation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_regulations
		ORDER BY effective_date DESC
	`, regulationColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list regulations: %w", err)
	}
	defer rows.Close()

	var regs []regulation.SalaryRegulation
	for rows.Next() {
		reg, err := scanRegulation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan regulation: %w", err)
		}
		regs = append(regs, reg)
	}

	return regs, rows.Err()
}
