package domain

import (
	"fmt"
	"time"
)

// MaxWeeklyHours caps a breakpoint's hours-per-week at the length of a week.
const MaxWeeklyHours = 7 * 24

// Breakpoint changes the weekly availability at Date.
type Breakpoint struct {
	Date         time.Time
	HoursPerWeek int
}

// ScheduleConfig is the raw input to NewAvailabilitySchedule.
type ScheduleConfig struct {
	Direction Direction
	BestCase  []Breakpoint
	WorstCase []Breakpoint
}

// AvailabilitySchedule holds per-scenario weekly-hour breakpoints and the
// direction they are read in. The base rate is not stored here; it belongs to
// ProjectSetup.
type AvailabilitySchedule struct {
	direction Direction
	bestCase  []Breakpoint
	worstCase []Breakpoint
}

// NewAvailabilitySchedule validates cfg and returns an immutable schedule.
// Dates within each sequence must be strictly increasing.
func NewAvailabilitySchedule(cfg ScheduleConfig) (*AvailabilitySchedule, error) {
	if !cfg.Direction.valid() {
		return nil, &InvalidScheduleError{
			Index:  -1,
			Reason: fmt.Sprintf("unknown direction %q", cfg.Direction),
		}
	}

	best, err := normalizeBreakpoints(ScenarioBestCase, cfg.BestCase)
	if err != nil {
		return nil, err
	}
	worst, err := normalizeBreakpoints(ScenarioWorstCase, cfg.WorstCase)
	if err != nil {
		return nil, err
	}

	return &AvailabilitySchedule{
		direction: cfg.Direction,
		bestCase:  best,
		worstCase: worst,
	}, nil
}

func normalizeBreakpoints(scenario Scenario, in []Breakpoint) ([]Breakpoint, error) {
	out := make([]Breakpoint, 0, len(in))
	for i, bp := range in {
		if bp.HoursPerWeek < 0 || bp.HoursPerWeek > MaxWeeklyHours {
			return nil, &InvalidScheduleError{
				Scenario: scenario,
				Index:    i,
				Reason:   fmt.Sprintf("hours per week %d outside [0, %d]", bp.HoursPerWeek, MaxWeeklyHours),
			}
		}
		day := Day(bp.Date)
		if i > 0 && !day.After(out[i-1].Date) {
			reason := fmt.Sprintf("date %s must be after %s", day.Format(DateLayout), out[i-1].Date.Format(DateLayout))
			if day.Equal(out[i-1].Date) {
				reason = fmt.Sprintf("duplicate date %s", day.Format(DateLayout))
			}
			return nil, &InvalidScheduleError{Scenario: scenario, Index: i, Reason: reason}
		}
		out = append(out, Breakpoint{Date: day, HoursPerWeek: bp.HoursPerWeek})
	}
	return out, nil
}

// Direction returns how breakpoint dates are interpreted.
func (s *AvailabilitySchedule) Direction() Direction {
	return s.direction
}

// Breakpoints returns a copy of the scenario's breakpoints in date order.
// Only BEST_CASE and WORST_CASE carry schedules.
func (s *AvailabilitySchedule) Breakpoints(scenario Scenario) ([]Breakpoint, error) {
	var src []Breakpoint
	switch scenario {
	case ScenarioBestCase:
		src = s.bestCase
	case ScenarioWorstCase:
		src = s.worstCase
	default:
		return nil, &MissingScenarioDataError{Scenario: scenario, What: "availability schedule"}
	}
	out := make([]Breakpoint, len(src))
	copy(out, src)
	return out, nil
}

// IsEmpty reports whether neither scenario has any breakpoints.
func (s *AvailabilitySchedule) IsEmpty() bool {
	return len(s.bestCase) == 0 && len(s.worstCase) == 0
}
