package domain

import "fmt"

// InvalidScheduleError reports a breakpoint sequence that breaks the schedule
// invariants: strictly increasing dates and weekly hours within [0, MaxWeeklyHours].
type InvalidScheduleError struct {
	Scenario Scenario
	// Index is the offending breakpoint position, or -1 for schedule-level problems.
	Index  int
	Reason string
}

func (e *InvalidScheduleError) Error() string {
	if e.Index < 0 {
		return "invalid availability schedule: " + e.Reason
	}
	return fmt.Sprintf("invalid availability schedule: %s[%d]: %s", e.Scenario, e.Index, e.Reason)
}

// UnsupportedScenarioError is returned when an estimate is requested from a
// scenario that has no derivation rule. Only WORST_CASE is affected.
type UnsupportedScenarioError struct {
	Scenario Scenario
}

func (e *UnsupportedScenarioError) Error() string {
	return fmt.Sprintf("%s input scenario not implemented", e.Scenario)
}

// MissingScenarioDataError is returned when a per-scenario mapping lacks a key the
// computation needs.
type MissingScenarioDataError struct {
	Scenario Scenario
	What     string
}

func (e *MissingScenarioDataError) Error() string {
	return fmt.Sprintf("%s scenario missing from %s", e.Scenario, e.What)
}
