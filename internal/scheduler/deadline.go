package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/deadline/internal/domain"
)

// DeadlineInput holds the work and availability a single projection runs on.
type DeadlineInput struct {
	WorkHours        int
	BaseHoursPerWeek int
	StartDate        time.Time
	// Breakpoints must be in increasing date order. Empty means the base rate
	// applies throughout.
	Breakpoints []domain.Breakpoint
	Direction   domain.Direction
}

// ProjectDeadline returns the calendar day on which WorkHours of work completes.
// The start date counts as a working day, so one week's worth of hours finishes
// on day 6. Returns nil when the rates never supply enough hours (a zero base
// rate, or a final restricted rate of zero with work remaining).
func ProjectDeadline(input DeadlineInput) *time.Time {
	start := domain.Day(input.StartDate)
	if input.WorkHours <= 0 {
		return &start
	}
	if input.BaseHoursPerWeek <= 0 {
		return nil
	}
	if len(input.Breakpoints) == 0 {
		return spanDeadline(start, float64(input.WorkHours), input.BaseHoursPerWeek)
	}

	switch input.Direction {
	case domain.DirectionStart:
		return startRestrictedDeadline(input, start)
	case domain.DirectionEnd:
		return endRestrictedDeadline(input, start)
	default:
		return spanDeadline(start, float64(input.WorkHours), input.BaseHoursPerWeek)
	}
}

// spanDeadline counts forward from day 0 at a constant weekly rate.
func spanDeadline(from time.Time, remaining float64, hoursPerWeek int) *time.Time {
	if hoursPerWeek <= 0 {
		return nil
	}
	// Multiply before dividing so whole-hour inputs stay exact.
	days := int(math.Ceil(remaining * 7 / float64(hoursPerWeek)))
	d := domain.AddDays(from, days-1)
	return &d
}

// startRestrictedDeadline walks breakpoints where each one starts a new rate.
// The base rate covers the span before the first breakpoint; a breakpoint's own
// day belongs to its new rate.
func startRestrictedDeadline(input DeadlineInput, start time.Time) *time.Time {
	totalWorked := 0
	dateIndex := start
	lastWeeklyHours := input.BaseHoursPerWeek

	for _, bp := range input.Breakpoints {
		date := domain.Day(bp.Date)
		if date.After(dateIndex) {
			days := domain.DaysBetween(dateIndex, date) - 1
			totalWorked += days * lastWeeklyHours / 7
			dateIndex = date
		} else {
			totalWorked = 0
		}

		if totalWorked >= input.WorkHours {
			// Surplus is converted back to whole weeks at the base rate.
			weeksBack := (totalWorked - input.WorkHours) / input.BaseHoursPerWeek
			d := domain.AddDays(date, -weeksBack*7)
			return &d
		}
		lastWeeklyHours = bp.HoursPerWeek
	}

	return spanDeadline(dateIndex, float64(input.WorkHours-totalWorked), lastWeeklyHours)
}

// endRestrictedDeadline walks breakpoints where each rate holds up to and
// including its date. Deadlines inside the restricted spans land on a
// breakpoint date.
func endRestrictedDeadline(input DeadlineInput, start time.Time) *time.Time {
	var totalWorked float64
	dateIndex := start
	days := 0

	for _, bp := range input.Breakpoints {
		date := domain.Day(bp.Date)
		if date.After(dateIndex) {
			// days is cumulative across breakpoints.
			days += domain.DaysBetween(dateIndex, date) + 1
			totalWorked += float64(days*bp.HoursPerWeek) / 7
			dateIndex = date
		}
		if totalWorked >= float64(input.WorkHours) {
			return &date
		}
	}

	return spanDeadline(dateIndex, float64(input.WorkHours)-totalWorked, input.BaseHoursPerWeek)
}
