package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/deadline/internal/domain"
)

// Convert transforms a validated ImportSchema into a ProjectSetup. A missing
// start date defaults to today. Call ValidateImportSchema first; schedule
// ordering is enforced here and fails with *domain.InvalidScheduleError.
func Convert(schema *ImportSchema, today time.Time) (*domain.ProjectSetup, error) {
	scenario, err := domain.ParseScenario(schema.InputScenario)
	if err != nil {
		return nil, fmt.Errorf("parsing inputEstimateScenario: %w", err)
	}

	startDate := domain.Day(today)
	if schema.StartDate != "" {
		startDate, err = domain.ParseDate(schema.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing startDate: %w", err)
		}
	}

	setup := &domain.ProjectSetup{
		EstimatedWorkHours:   schema.EstimatedWorkHours,
		InputScenario:        scenario,
		SafetyMargin:         schema.SafetyMargin,
		StartDate:            startDate,
		Currency:             schema.Currency,
		HourlyFee:            schema.HourlyFee,
		WeeklyAvailableHours: schema.WeeklyAvailableHours,
	}

	if schema.Restrictions != nil {
		schedule, err := convertRestrictions(schema.Restrictions)
		if err != nil {
			return nil, err
		}
		setup.Availability = schedule
	}

	return setup, nil
}

func convertRestrictions(r *RestrictionsImport) (*domain.AvailabilitySchedule, error) {
	direction, err := domain.ParseDirection(r.Type)
	if err != nil {
		return nil, fmt.Errorf("parsing availabilityRestrictions.type: %w", err)
	}

	best, err := convertBreakpoints("bestCase", r.BestCase)
	if err != nil {
		return nil, err
	}
	worst, err := convertBreakpoints("worstCase", r.WorstCase)
	if err != nil {
		return nil, err
	}

	schedule, err := domain.NewAvailabilitySchedule(domain.ScheduleConfig{
		Direction: direction,
		BestCase:  best,
		WorstCase: worst,
	})
	if err != nil {
		return nil, fmt.Errorf("availabilityRestrictions: %w", err)
	}
	return schedule, nil
}

func convertBreakpoints(field string, in BreakpointsImport) ([]domain.Breakpoint, error) {
	out := make([]domain.Breakpoint, 0, len(in))
	for i, bp := range in {
		date, err := domain.ParseDate(bp.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing availabilityRestrictions.%s[%d]: %w", field, i, err)
		}
		out = append(out, domain.Breakpoint{Date: date, HoursPerWeek: bp.Hours})
	}
	return out, nil
}

// FromSetup is the inverse of Convert, used when saving a setup to disk.
func FromSetup(setup *domain.ProjectSetup) (*ImportSchema, error) {
	schema := &ImportSchema{
		EstimatedWorkHours:   setup.EstimatedWorkHours,
		InputScenario:        string(setup.InputScenario),
		SafetyMargin:         setup.SafetyMargin,
		Currency:             setup.Currency,
		HourlyFee:            setup.HourlyFee,
		WeeklyAvailableHours: setup.WeeklyAvailableHours,
	}
	if !setup.StartDate.IsZero() {
		schema.StartDate = setup.StartDate.Format(domain.DateLayout)
	}

	if s := setup.Availability; s != nil {
		best, err := s.Breakpoints(domain.ScenarioBestCase)
		if err != nil {
			return nil, err
		}
		worst, err := s.Breakpoints(domain.ScenarioWorstCase)
		if err != nil {
			return nil, err
		}
		schema.Restrictions = &RestrictionsImport{
			Type:      string(s.Direction()),
			BestCase:  breakpointsImport(best),
			WorstCase: breakpointsImport(worst),
		}
	}
	return schema, nil
}

func breakpointsImport(in []domain.Breakpoint) BreakpointsImport {
	out := make(BreakpointsImport, 0, len(in))
	for _, bp := range in {
		out = append(out, BreakpointImport{Date: bp.Date.Format(domain.DateLayout), Hours: bp.HoursPerWeek})
	}
	return out
}
