package testutil

import (
	"time"

	"github.com/alexanderramin/deadline/internal/domain"
)

// Setup options
type SetupOption func(*domain.ProjectSetup)

func WithWorkHours(h int) SetupOption {
	return func(s *domain.ProjectSetup) {
		s.EstimatedWorkHours = h
	}
}

func WithInputScenario(sc domain.Scenario) SetupOption {
	return func(s *domain.ProjectSetup) {
		s.InputScenario = sc
	}
}

func WithSafetyMargin(m float64) SetupOption {
	return func(s *domain.ProjectSetup) {
		s.SafetyMargin = m
	}
}

func WithStartDate(d time.Time) SetupOption {
	return func(s *domain.ProjectSetup) {
		s.StartDate = d
	}
}

func WithHourlyFee(fee float64, currency string) SetupOption {
	return func(s *domain.ProjectSetup) {
		s.HourlyFee = fee
		s.Currency = currency
	}
}

func WithWeeklyHours(h int) SetupOption {
	return func(s *domain.ProjectSetup) {
		s.WeeklyAvailableHours = h
	}
}

func WithAvailability(a *domain.AvailabilitySchedule) SetupOption {
	return func(s *domain.ProjectSetup) {
		s.Availability = a
	}
}

// WithoutAvailability drops the schedule so every scenario runs at the base rate.
func WithoutAvailability() SetupOption {
	return WithAvailability(nil)
}

// NewTestSchedule builds a schedule and panics on invalid input.
func NewTestSchedule(dir domain.Direction, best, worst []domain.Breakpoint) *domain.AvailabilitySchedule {
	s, err := domain.NewAvailabilitySchedule(domain.ScheduleConfig{
		Direction: dir,
		BestCase:  best,
		WorstCase: worst,
	})
	if err != nil {
		panic(err)
	}
	return s
}

// NewTestSetup returns the reference project: 39 best-case hours with a 0.3
// margin from 2020-03-16 at 30h/week and £35/h, with an END schedule of 10h/week
// until 2020-03-29 (best case) and 2020-04-05 (worst case).
func NewTestSetup(opts ...SetupOption) *domain.ProjectSetup {
	s := &domain.ProjectSetup{
		EstimatedWorkHours:   39,
		InputScenario:        domain.ScenarioBestCase,
		SafetyMargin:         0.3,
		StartDate:            domain.MustDate("2020-03-16"),
		Currency:             "GBP",
		HourlyFee:            35,
		WeeklyAvailableHours: 30,
		Availability: NewTestSchedule(domain.DirectionEnd,
			[]domain.Breakpoint{{Date: domain.MustDate("2020-03-29"), HoursPerWeek: 10}},
			[]domain.Breakpoint{{Date: domain.MustDate("2020-04-05"), HoursPerWeek: 10}},
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
