package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// MaxWorkHours caps an estimate. At a margin of 1 the worst case triples it,
// and projected deadlines stay well inside the range of a time.Time.
const MaxWorkHours = 1_000_000

// ProjectSetup is everything an estimate is computed from.
type ProjectSetup struct {
	EstimatedWorkHours int
	InputScenario      Scenario
	// SafetyMargin is a fraction in [0, 1].
	SafetyMargin float64
	StartDate    time.Time
	// Currency is an ISO 4217 code such as GBP.
	Currency string
	HourlyFee float64
	// WeeklyAvailableHours is the base rate used outside any restriction.
	WeeklyAvailableHours int
	Availability         *AvailabilitySchedule
}

// Validate checks the scalar fields. Schedule invariants are enforced when the
// schedule is built.
func (p *ProjectSetup) Validate() error {
	var errs []error
	if p.EstimatedWorkHours <= 0 || p.EstimatedWorkHours > MaxWorkHours {
		errs = append(errs, fmt.Errorf("estimated work hours %d must be between 1 and %d", p.EstimatedWorkHours, MaxWorkHours))
	}
	if p.SafetyMargin < 0 || p.SafetyMargin > 1 {
		errs = append(errs, fmt.Errorf("safety margin %.2f must be between 0 and 1", p.SafetyMargin))
	}
	if p.WeeklyAvailableHours <= 0 || p.WeeklyAvailableHours > MaxWeeklyHours {
		errs = append(errs, fmt.Errorf("weekly available hours %d must be between 1 and %d", p.WeeklyAvailableHours, MaxWeeklyHours))
	}
	if p.HourlyFee < 0 {
		errs = append(errs, fmt.Errorf("hourly fee must not be negative"))
	}
	if !currencyCodePattern.MatchString(p.Currency) {
		errs = append(errs, fmt.Errorf("currency %q must be a 3-letter ISO 4217 code", p.Currency))
	}
	if p.StartDate.IsZero() {
		errs = append(errs, fmt.Errorf("start date is required"))
	}
	return errors.Join(errs...)
}

// Estimate is the outcome for one scenario.
type Estimate struct {
	// WorkHours assumes uninterrupted work: how many hours would it take?
	WorkHours int
	// Deadline is nil when the schedule never supplies enough hours.
	Deadline *time.Time
	Fee      float64
	// FeeMargin is shared by all scenarios of one computation. For the realistic
	// estimate the total fee reads as Fee ±FeeMargin.
	FeeMargin float64
	Currency  string
}
