package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/deadline/internal/contract"
	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/alexanderramin/deadline/internal/scheduler"
	"github.com/google/uuid"
)

type estimateService struct {
	observer UseCaseObserver
}

func NewEstimateService(observers ...UseCaseObserver) EstimateService {
	return &estimateService{observer: useCaseObserverOrNoop(observers)}
}

func (s *estimateService) Estimate(ctx context.Context, req contract.EstimateRequest) (resp *contract.EstimateResponse, err error) {
	startedAt := time.Now().UTC()
	runID := uuid.New().String()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "estimate",
			RunID:     runID,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.Setup == nil {
		return nil, &contract.EstimateError{Code: contract.EstimateErrInvalidSetup, Message: "project setup is required"}
	}

	setup := *req.Setup
	if req.StartDate != nil {
		setup.StartDate = domain.Day(*req.StartDate)
	}
	if verr := setup.Validate(); verr != nil {
		return nil, &contract.EstimateError{Code: contract.EstimateErrInvalidSetup, Message: verr.Error(), Err: verr}
	}
	fields["input_scenario"] = string(setup.InputScenario)
	fields["estimated_hours"] = setup.EstimatedWorkHours
	fields["restricted"] = setup.Availability != nil && !setup.Availability.IsEmpty()

	estimates, err := ComputeEstimates(&setup)
	if err != nil {
		return nil, err
	}
	if realistic, ok := estimates[domain.ScenarioRealistic]; ok && realistic.Deadline != nil {
		fields["realistic_deadline"] = realistic.Deadline.Format(domain.DateLayout)
	}

	return &contract.EstimateResponse{
		RunID:     runID,
		StartDate: domain.Day(setup.StartDate),
		Estimates: estimates,
	}, nil
}

// ComputeEstimates derives the three work-hour figures from the setup's single
// estimate and builds the per-scenario estimates from them.
func ComputeEstimates(setup *domain.ProjectSetup) (map[domain.Scenario]domain.Estimate, error) {
	hours, err := scheduler.DeriveWorkHours(setup.EstimatedWorkHours, setup.InputScenario, setup.SafetyMargin)
	if err != nil {
		return nil, fmt.Errorf("deriving work hours: %w", err)
	}
	return BuildEstimates(hours, setup, setup.StartDate)
}

// BuildEstimates turns per-scenario work hours into estimates. All three
// scenarios must be present.
func BuildEstimates(workHours map[domain.Scenario]int, setup *domain.ProjectSetup, startDate time.Time) (map[domain.Scenario]domain.Estimate, error) {
	best, ok := workHours[domain.ScenarioBestCase]
	if !ok {
		return nil, &domain.MissingScenarioDataError{Scenario: domain.ScenarioBestCase, What: "work hours"}
	}
	worst, ok := workHours[domain.ScenarioWorstCase]
	if !ok {
		return nil, &domain.MissingScenarioDataError{Scenario: domain.ScenarioWorstCase, What: "work hours"}
	}
	realistic, ok := workHours[domain.ScenarioRealistic]
	if !ok {
		return nil, &domain.MissingScenarioDataError{Scenario: domain.ScenarioRealistic, What: "work hours"}
	}

	deadlines, err := projectDeadlines(best, worst, setup, startDate)
	if err != nil {
		return nil, err
	}

	feeMargin := float64(worst-realistic) * setup.HourlyFee
	estimate := func(sc domain.Scenario, hours int) domain.Estimate {
		return domain.Estimate{
			WorkHours: hours,
			Deadline:  deadlines[sc],
			Fee:       float64(hours) * setup.HourlyFee,
			FeeMargin: feeMargin,
			Currency:  setup.Currency,
		}
	}

	return map[domain.Scenario]domain.Estimate{
		domain.ScenarioBestCase:  estimate(domain.ScenarioBestCase, best),
		domain.ScenarioWorstCase: estimate(domain.ScenarioWorstCase, worst),
		domain.ScenarioRealistic: estimate(domain.ScenarioRealistic, realistic),
	}, nil
}

// projectDeadlines projects best and worst case against their own schedules.
// With a schedule the realistic deadline is the midpoint of the two; without
// one it is projected from the midpoint hours.
func projectDeadlines(best, worst int, setup *domain.ProjectSetup, startDate time.Time) (map[domain.Scenario]*time.Time, error) {
	base := setup.WeeklyAvailableHours

	if setup.Availability == nil {
		project := func(hours int) *time.Time {
			return scheduler.ProjectDeadline(scheduler.DeadlineInput{
				WorkHours:        hours,
				BaseHoursPerWeek: base,
				StartDate:        startDate,
			})
		}
		return map[domain.Scenario]*time.Time{
			domain.ScenarioBestCase:  project(best),
			domain.ScenarioWorstCase: project(worst),
			domain.ScenarioRealistic: project(scheduler.MidpointHours(best, worst)),
		}, nil
	}

	schedule := setup.Availability
	project := func(sc domain.Scenario, hours int) (*time.Time, error) {
		breakpoints, err := schedule.Breakpoints(sc)
		if err != nil {
			return nil, err
		}
		return scheduler.ProjectDeadline(scheduler.DeadlineInput{
			WorkHours:        hours,
			BaseHoursPerWeek: base,
			StartDate:        startDate,
			Breakpoints:      breakpoints,
			Direction:        schedule.Direction(),
		}), nil
	}

	bestDeadline, err := project(domain.ScenarioBestCase, best)
	if err != nil {
		return nil, err
	}
	worstDeadline, err := project(domain.ScenarioWorstCase, worst)
	if err != nil {
		return nil, err
	}

	return map[domain.Scenario]*time.Time{
		domain.ScenarioBestCase:  bestDeadline,
		domain.ScenarioWorstCase: worstDeadline,
		domain.ScenarioRealistic: scheduler.MidpointDeadline(bestDeadline, worstDeadline),
	}, nil
}
