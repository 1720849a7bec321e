package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) GetForEmployeePeriod(ctx context.Context, employeeID string, year, month int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, work_value, overtime_hours, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM date) = $2
		  AND EXTRACT(MONTH FROM date) = $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance rows: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
			&rec.WorkValue, &rec.OvertimeHours, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) GetRawClockEvents(ctx context.Context, periodStart, periodEnd time.Time) ([]attendance.RawClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	// The finger_logs table is the raw device feed; rows are consumed per
	// reconciliation run and never rewritten by the engine.
	query := `
		SELECT finger_id, check_time
		FROM finger_logs
		WHERE check_time >= $1 AND check_time < $2
		ORDER BY check_time
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raw clock events: %w", err)
	}
	defer rows.Close()

	var events []attendance.RawClockEvent
	for rows.Next() {
		var ev attendance.RawClockEvent
		if err := rows.Scan(&ev.FingerID, &ev.CheckTime); err != nil {
			return nil, fmt.Errorf("failed to scan raw clock event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

func (r *attendanceRepository) CountForPeriod(ctx context.Context, year, month int) (map[string]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, COUNT(*)
		FROM attendance_records
		WHERE EXTRACT(YEAR FROM date) = $1
		  AND EXTRACT(MONTH FROM date) = $2
		GROUP BY employee_id
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance rows: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var employeeID string
		var count int
		if err := rows.Scan(&employeeID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan attendance count: %w", err)
		}
		counts[employeeID] = count
	}

	return counts, rows.Err()
}
