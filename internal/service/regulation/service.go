package regulation

import (
	"context"
	"fmt"
	"time"

	"github.com/palmahr/payroll-engine-go/internal/domain/regulation"
)

// Service exposes the append-only regulation administration operations.
// Versions are never mutated; publishing a change means inserting a new
// row with a later effective date.
type Service struct {
	regulationRepo regulation.Repository
}

func NewService(regulationRepo regulation.Repository) *Service {
	return &Service{regulationRepo: regulationRepo}
}

func (s *Service) Create(ctx context.Context, req regulation.CreateRegulationRequest) (regulation.RegulationResponse, error) {
	if err := req.Validate(); err != nil {
		return regulation.RegulationResponse{}, err
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return regulation.RegulationResponse{}, fmt.Errorf("invalid effective date: %w", err)
	}

	reg := regulation.SalaryRegulation{
		Name:          req.Name,
		EffectiveDate: effectiveDate,

		WorkingDaysPerMonth: req.WorkingDaysPerMonth,
		WorkingHoursPerDay:  req.WorkingHoursPerDay,
		MaxHoursPerDay:      req.MaxHoursPerDay,

		OvertimeWeekdayRate: req.OvertimeWeekdayRate,
		OvertimeWeekendRate: req.OvertimeWeekendRate,
		OvertimeHolidayRate: req.OvertimeHolidayRate,
		OvertimeNightRate:   req.OvertimeNightRate,

		SocialInsuranceRate:       req.SocialInsuranceRate,
		HealthInsuranceRate:       req.HealthInsuranceRate,
		UnemploymentInsuranceRate: req.UnemploymentInsuranceRate,
		UnionFeeRate:              req.UnionFeeRate,

		CompanySocialInsuranceRate:       req.CompanySocialInsuranceRate,
		CompanyHealthInsuranceRate:       req.CompanyHealthInsuranceRate,
		CompanyUnemploymentInsuranceRate: req.CompanyUnemploymentInsuranceRate,
		CompanyUnionFeeRate:              req.CompanyUnionFeeRate,

		MaxInsuranceSalary: req.MaxInsuranceSalary,

		PersonalDeduction:    req.PersonalDeduction,
		DependentDeduction:   req.DependentDeduction,
		EnableProgressiveTax: req.EnableProgressiveTax,
	}

	created, err := s.regulationRepo.Create(ctx, reg)
	if err != nil {
		return regulation.RegulationResponse{}, fmt.Errorf("failed to create salary regulation: %w", err)
	}

	return mapToResponse(created), nil
}

func (s *Service) List(ctx context.Context) ([]regulation.RegulationResponse, error) {
	regs, err := s.regulationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary regulations: %w", err)
	}

	result := make([]regulation.RegulationResponse, 0, len(regs))
	for _, reg := range regs {
		result = append(result, mapToResponse(reg))
	}
	return result, nil
}

func mapToResponse(reg regulation.SalaryRegulation) regulation.RegulationResponse {
	return regulation.RegulationResponse{
		ID:            reg.ID,
		Name:          reg.Name,
		EffectiveDate: reg.EffectiveDate.Format("2006-01-02"),

		WorkingDaysPerMonth: reg.WorkingDaysPerMonth,
		WorkingHoursPerDay:  reg.WorkingHoursPerDay,
		MaxHoursPerDay:      reg.MaxHoursPerDay,

		OvertimeWeekdayRate: reg.OvertimeWeekdayRate,
		OvertimeWeekendRate: reg.OvertimeWeekendRate,
		OvertimeHolidayRate: reg.OvertimeHolidayRate,
		OvertimeNightRate:   reg.OvertimeNightRate,

		SocialInsuranceRate:       reg.SocialInsuranceRate,
		HealthInsuranceRate:       reg.HealthInsuranceRate,
		UnemploymentInsuranceRate: reg.UnemploymentInsuranceRate,
		UnionFeeRate:              reg.UnionFeeRate,

		CompanySocialInsuranceRate:       reg.CompanySocialInsuranceRate,
		CompanyHealthInsuranceRate:       reg.CompanyHealthInsuranceRate,
		CompanyUnemploymentInsuranceRate: reg.CompanyUnemploymentInsuranceRate,
		CompanyUnionFeeRate:              reg.CompanyUnionFeeRate,

		MaxInsuranceSalary: reg.MaxInsuranceSalary,

		PersonalDeduction:    reg.PersonalDeduction,
		DependentDeduction:   reg.DependentDeduction,
		EnableProgressiveTax: reg.EnableProgressiveTax,
	}
}
