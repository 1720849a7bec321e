package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/palmahr/payroll-engine-go/internal/domain/employee"
	"github.com/palmahr/payroll-engine-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.full_name,
	e.department_id, d.name, e.position_id, COALESCE(p.name, ''),
	e.base_salary, e.employment_type, e.employment_status,
	e.marital_status, e.dependents_count,
	e.housing_allowance, e.transport_allowance, e.meal_allowance,
	e.phone_allowance, e.position_allowance, e.attendance_allowance,
	e.other_allowance, e.personal_deduction,
	e.hire_date, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (employee.Profile, error) {
	var emp employee.Profile
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName,
		&emp.DepartmentID, &emp.DepartmentName, &emp.PositionID, &emp.PositionName,
		&emp.BaseSalary, &emp.EmploymentType, &emp.EmploymentStatus,
		&emp.MaritalStatus, &emp.DependentsCount,
		&emp.HousingAllowance, &emp.TransportAllowance, &emp.MealAllowance,
		&emp.PhoneAllowance, &emp.PositionAllowance, &emp.AttendanceAllowance,
		&emp.OtherAllowance, &emp.PersonalDeduction,
		&emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.employment_status = 'active' AND e.deleted_at IS NULL
		ORDER BY e.employee_code
	`, employeeColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Profile
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Profile{}, employee.ErrEmployeeNotFound
		}
		return employee.Profile{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}
