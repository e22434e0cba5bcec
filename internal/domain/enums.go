package domain

import (
	"fmt"
	"strings"
)

// Scenario tags which hour assumption an estimate or restriction applies to.
type Scenario string

const (
	ScenarioBestCase  Scenario = "BEST_CASE"
	ScenarioWorstCase Scenario = "WORST_CASE"
	ScenarioRealistic Scenario = "REALISTIC"
)

// Scenarios lists every scenario in report order.
var Scenarios = []Scenario{ScenarioBestCase, ScenarioWorstCase, ScenarioRealistic}

// ParseScenario accepts the canonical upper snake case form, case-insensitively.
func ParseScenario(s string) (Scenario, error) {
	switch sc := Scenario(strings.ToUpper(strings.TrimSpace(s))); sc {
	case ScenarioBestCase, ScenarioWorstCase, ScenarioRealistic:
		return sc, nil
	}
	return "", fmt.Errorf("unknown scenario %q (expected BEST_CASE, WORST_CASE or REALISTIC)", s)
}

// Label returns the human-facing name used in reports.
func (s Scenario) Label() string {
	switch s {
	case ScenarioBestCase:
		return "Best case"
	case ScenarioWorstCase:
		return "Worst case"
	case ScenarioRealistic:
		return "Realistic"
	default:
		return string(s)
	}
}

// Direction says how breakpoint dates are read relative to the base rate.
type Direction string

const (
	// DirectionStart means the base rate applies up to the first date; each
	// breakpoint's rate applies from its date until the next one.
	DirectionStart Direction = "START"
	// DirectionEnd means each breakpoint's rate applies up to and including its
	// date; the base rate resumes after the last one.
	DirectionEnd Direction = "END"
)

// ParseDirection accepts START or END, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToUpper(strings.TrimSpace(s))); d {
	case DirectionStart, DirectionEnd:
		return d, nil
	}
	return "", fmt.Errorf("unknown restriction type %q (expected START or END)", s)
}

func (d Direction) valid() bool {
	return d == DirectionStart || d == DirectionEnd
}
