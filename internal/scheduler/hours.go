package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/deadline/internal/domain"
)

// DeriveWorkHours spreads one estimate over the three scenarios using the
// safety margin. The realistic estimate sits one margin above best case and the
// worst case two margins above it. Fractional hours are truncated.
func DeriveWorkHours(estimated int, input domain.Scenario, margin float64) (map[domain.Scenario]int, error) {
	var best, worst, realistic int

	switch input {
	case domain.ScenarioBestCase:
		best = estimated
		realistic = int(float64(best) * (1 + margin))
		worst = int(float64(best) * (1 + 2*margin))
	case domain.ScenarioRealistic:
		realistic = estimated
		best = int(float64(realistic) * (1 - margin))
		worst = int(float64(realistic) * (1 + 2*margin))
	default:
		return nil, &domain.UnsupportedScenarioError{Scenario: input}
	}

	return map[domain.Scenario]int{
		domain.ScenarioBestCase:  best,
		domain.ScenarioWorstCase: worst,
		domain.ScenarioRealistic: realistic,
	}, nil
}

// MidpointHours is the rounded-up mean of best and worst hours, used to project
// the realistic deadline when there is no schedule.
func MidpointHours(best, worst int) int {
	return int(math.Ceil(float64(best+worst) / 2))
}

// MidpointDeadline averages two deadlines by epoch day, rounding up. Returns nil
// if either side is unresolvable.
func MidpointDeadline(a, b *time.Time) *time.Time {
	if a == nil || b == nil {
		return nil
	}
	mid := int64(math.Ceil(float64(domain.EpochDay(*a)+domain.EpochDay(*b)) / 2))
	d := domain.FromEpochDay(mid)
	return &d
}
