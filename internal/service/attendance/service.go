package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/domain/employee"
	domainRegulation "github.com/palmahr/payroll-engine-go/internal/domain/regulation"
	regulationService "github.com/palmahr/payroll-engine-go/internal/service/regulation"
	"github.com/shopspring/decimal"
)

// Service builds the monthly attendance summary view from the raw device
// feed. This is the light-weight reconciliation path; batch payroll
// generation aggregates structured rows instead.
type Service struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	resolver       *regulationService.Resolver
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	resolver *regulationService.Resolver,
) *Service {
	return &Service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		resolver:       resolver,
	}
}

func (s *Service) MonthlySummary(ctx context.Context, req attendance.SummaryRequest) (attendance.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	roster, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to fetch employee roster: %w", err)
	}

	events, err := s.attendanceRepo.GetRawClockEvents(ctx, periodStart, periodEnd)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to fetch raw clock events: %w", err)
	}

	// The summary is a view, so a missing regulation degrades to the
	// standard defaults instead of failing the request.
	reg, err := s.resolver.Resolve(ctx, req.Year, req.Month)
	if err != nil {
		slog.Warn("attendance summary using default regulation", "year", req.Year, "month", req.Month, "error", err)
		reg = domainRegulation.ApplyDefaults(domainRegulation.SalaryRegulation{}, domainRegulation.StandardDefaults())
	}

	windows := Reconcile(events, roster, periodStart, periodEnd)

	names := make(map[string]string, len(roster))
	for _, emp := range roster {
		names[emp.ID] = emp.FullName
	}

	byIdentity := make(map[string][]attendance.DayKey)
	for key := range windows {
		byIdentity[key.Identity] = append(byIdentity[key.Identity], key)
	}

	employees := make([]attendance.EmployeeSummaryResponse, 0, len(byIdentity))
	for identity, keys := range byIdentity {
		sort.Slice(keys, func(i, j int) bool { return keys[i].Date.Before(keys[j].Date) })

		summary := attendance.EmployeeSummaryResponse{
			Identity:      identity,
			EmployeeName:  names[identity],
			Unlinked:      IsUnlinked(identity),
			TotalDays:     decimal.Zero,
			TotalOvertime: decimal.Zero,
		}

		dailyHours := make([]DailyHours, 0, len(keys))
		for _, key := range keys {
			window := windows[key]
			hours, workValue, overtimeHours := DeriveDaily(window)

			summary.Days = append(summary.Days, attendance.DailySummaryResponse{
				Identity:      identity,
				EmployeeName:  summary.EmployeeName,
				Unlinked:      summary.Unlinked,
				Date:          key.Date.Format("2006-01-02"),
				ClockIn:       window.MinTime.UTC().Format(time.RFC3339),
				ClockOut:      window.MaxTime.UTC().Format(time.RFC3339),
				WorkHours:     hours,
				WorkValue:     workValue,
				OvertimeHours: overtimeHours,
			})
			summary.TotalDays = summary.TotalDays.Add(workValue)
			summary.TotalOvertime = summary.TotalOvertime.Add(overtimeHours)
			dailyHours = append(dailyHours, DailyHours{Date: key.Date, Hours: hours})
		}

		summary.WeekdayOvertimeHours, summary.WeekendOvertimeHours = AggregateByCalendar(dailyHours, reg)
		employees = append(employees, summary)
	}

	// Linked employees first, then placeholders, each alphabetically.
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].Unlinked != employees[j].Unlinked {
			return !employees[i].Unlinked
		}
		if employees[i].EmployeeName != employees[j].EmployeeName {
			return employees[i].EmployeeName < employees[j].EmployeeName
		}
		return employees[i].Identity < employees[j].Identity
	})

	return attendance.MonthlySummaryResponse{
		Year:      req.Year,
		Month:     req.Month,
		Employees: employees,
	}, nil
}
