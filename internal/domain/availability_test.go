package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bp(date string, hours int) Breakpoint {
	return Breakpoint{Date: MustDate(date), HoursPerWeek: hours}
}

func TestNewAvailabilitySchedule_Valid(t *testing.T) {
	s, err := NewAvailabilitySchedule(ScheduleConfig{
		Direction: DirectionEnd,
		BestCase:  []Breakpoint{bp("2020-03-29", 10)},
		WorstCase: []Breakpoint{bp("2020-03-29", 10), bp("2020-04-05", 5)},
	})
	require.NoError(t, err)

	assert.Equal(t, DirectionEnd, s.Direction())
	assert.False(t, s.IsEmpty())

	best, err := s.Breakpoints(ScenarioBestCase)
	require.NoError(t, err)
	assert.Equal(t, []Breakpoint{bp("2020-03-29", 10)}, best)

	worst, err := s.Breakpoints(ScenarioWorstCase)
	require.NoError(t, err)
	require.Len(t, worst, 2)
	assert.Equal(t, 5, worst[1].HoursPerWeek)
}

func TestNewAvailabilitySchedule_DecreasingDates(t *testing.T) {
	_, err := NewAvailabilitySchedule(ScheduleConfig{
		Direction: DirectionEnd,
		BestCase:  []Breakpoint{bp("2020-03-29", 10), bp("2020-03-20", 10)},
	})
	require.Error(t, err)

	var schedErr *InvalidScheduleError
	require.True(t, errors.As(err, &schedErr))
	assert.Equal(t, ScenarioBestCase, schedErr.Scenario)
	assert.Equal(t, 1, schedErr.Index)
	assert.Contains(t, err.Error(), "must be after")
}

func TestNewAvailabilitySchedule_DuplicateDates(t *testing.T) {
	_, err := NewAvailabilitySchedule(ScheduleConfig{
		Direction: DirectionStart,
		WorstCase: []Breakpoint{bp("2020-03-29", 10), bp("2020-03-29", 5)},
	})
	var schedErr *InvalidScheduleError
	require.True(t, errors.As(err, &schedErr))
	assert.Equal(t, ScenarioWorstCase, schedErr.Scenario)
	assert.Contains(t, err.Error(), "duplicate date 2020-03-29")
}

func TestNewAvailabilitySchedule_SameDayDifferentClock(t *testing.T) {
	morning := time.Date(2020, 3, 29, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2020, 3, 29, 20, 0, 0, 0, time.UTC)
	_, err := NewAvailabilitySchedule(ScheduleConfig{
		Direction: DirectionStart,
		BestCase:  []Breakpoint{{Date: morning, HoursPerWeek: 1}, {Date: evening, HoursPerWeek: 2}},
	})
	var schedErr *InvalidScheduleError
	assert.True(t, errors.As(err, &schedErr))
}

func TestNewAvailabilitySchedule_HoursOutOfRange(t *testing.T) {
	for _, hours := range []int{-1, MaxWeeklyHours + 1} {
		_, err := NewAvailabilitySchedule(ScheduleConfig{
			Direction: DirectionStart,
			BestCase:  []Breakpoint{bp("2020-03-29", hours)},
		})
		var schedErr *InvalidScheduleError
		assert.True(t, errors.As(err, &schedErr), "hours=%d", hours)
	}
}

func TestNewAvailabilitySchedule_UnknownDirection(t *testing.T) {
	_, err := NewAvailabilitySchedule(ScheduleConfig{Direction: "SIDEWAYS"})
	var schedErr *InvalidScheduleError
	require.True(t, errors.As(err, &schedErr))
	assert.Equal(t, -1, schedErr.Index)
}

func TestAvailabilitySchedule_BreakpointsIsCopy(t *testing.T) {
	s, err := NewAvailabilitySchedule(ScheduleConfig{
		Direction: DirectionStart,
		BestCase:  []Breakpoint{bp("2020-03-29", 10)},
	})
	require.NoError(t, err)

	got, _ := s.Breakpoints(ScenarioBestCase)
	got[0].HoursPerWeek = 99

	again, _ := s.Breakpoints(ScenarioBestCase)
	assert.Equal(t, 10, again[0].HoursPerWeek)
}

func TestAvailabilitySchedule_RealisticHasNoBreakpoints(t *testing.T) {
	s, err := NewAvailabilitySchedule(ScheduleConfig{Direction: DirectionStart})
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	_, err = s.Breakpoints(ScenarioRealistic)
	var missing *MissingScenarioDataError
	assert.True(t, errors.As(err, &missing))
}
