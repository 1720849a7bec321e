package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/domain/employee"
	"github.com/palmahr/payroll-engine-go/internal/domain/notification"
)

// PayrollJobs audits attendance coverage ahead of the payroll run so a
// silent clock feed is noticed before anyone generates a batch.
type PayrollJobs struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	notifier       notification.Emitter
	location       *time.Location
}

func NewPayrollJobs(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	notifier notification.Emitter,
	location *time.Location,
) *PayrollJobs {
	if location == nil {
		location = time.UTC
	}
	return &PayrollJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		notifier:       notifier,
		location:       location,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("attendance_gap_audit", 1*time.Hour, j.AuditAttendanceGaps)
}

// AuditAttendanceGaps flags active employees with zero attendance rows
// for the previous month. Payroll for that month would come out empty
// for them, which is almost always a broken device link rather than a
// month of absence.
func (j *PayrollJobs) AuditAttendanceGaps(ctx context.Context) error {
	// Only run during the first day of the month (01:00-01:59 local)
	now := time.Now().In(j.location)
	if now.Day() != 1 || now.Hour() != 1 {
		return nil
	}

	prev := now.AddDate(0, -1, 0)
	year, month := prev.Year(), int(prev.Month())

	slog.Info("Cron: Starting attendance gap audit", "year", year, "month", month)

	counts, err := j.attendanceRepo.CountForPeriod(ctx, year, month)
	if err != nil {
		return fmt.Errorf("failed to count attendance rows: %w", err)
	}

	roster, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch employee roster: %w", err)
	}

	var gaps []string
	for _, emp := range roster {
		if counts[emp.ID] > 0 {
			continue
		}
		gaps = append(gaps, emp.ID)
		slog.Warn("Cron: Employee has no attendance rows for period",
			"employee_id", emp.ID,
			"employee_code", emp.EmployeeCode,
			"year", year,
			"month", month)
	}

	if len(gaps) > 0 && j.notifier != nil {
		j.notifier.Emit(ctx, notification.KindAttendanceGap, map[string]interface{}{
			"period_year":  year,
			"period_month": month,
			"employee_ids": gaps,
			"count":        len(gaps),
		})
	}

	slog.Info("Cron: Attendance gap audit completed", "gap_count", len(gaps))
	return nil
}
