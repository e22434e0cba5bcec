package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/alexanderramin/deadline/internal/importer"
	"github.com/charmbracelet/huh"
)

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "2020-03-16"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// hoursInput returns a huh.Input for a required positive number of hours.
func hoursInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateWorkHours)
}

// breakpointsInput returns a huh.Input for a "date=hours, ..." list.
func breakpointsInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description("Comma separated DATE=HOURS pairs in date order, e.g. 2020-03-29=10, 2020-04-05=20").
		Placeholder("2020-03-29=10").
		Value(value).
		Validate(validateBreakpointList)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateWorkHours accepts 1 to domain.MaxWorkHours hours.
func validateWorkHours(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 || v > domain.MaxWorkHours {
		return fmt.Errorf("enter whole hours between 1 and %d", domain.MaxWorkHours)
	}
	return nil
}

// validateWeeklyHours accepts 1 to 168 hours.
func validateWeeklyHours(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 || v > domain.MaxWeeklyHours {
		return fmt.Errorf("enter whole hours between 1 and %d", domain.MaxWeeklyHours)
	}
	return nil
}

// validateMargin accepts a fraction between 0 and 1.
func validateMargin(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || v > 1 {
		return fmt.Errorf("enter a fraction between 0 and 1, e.g. 0.3")
	}
	return nil
}

func validateNonNegativeFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative amount")
	}
	return nil
}

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

func validateCurrencyCode(s string) error {
	if !currencyCodePattern.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("enter a 3-letter currency code, e.g. GBP")
	}
	return nil
}

func validateBreakpointList(s string) error {
	_, err := parseBreakpointList(s)
	return err
}

// parseBreakpointList parses "2020-03-29=10, 2020-04-05=20". Colons work as
// separators too. Entries keep their written order; ordering is checked when
// the schedule is built.
func parseBreakpointList(s string) (importer.BreakpointsImport, error) {
	var out importer.BreakpointsImport
	for _, entry := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '\n' || r == ';' }) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		date, hours, ok := strings.Cut(entry, "=")
		if !ok {
			date, hours, ok = strings.Cut(entry, ":")
		}
		if !ok {
			return nil, fmt.Errorf("%q: expected DATE=HOURS", entry)
		}
		date, hours = strings.TrimSpace(date), strings.TrimSpace(hours)
		if _, err := domain.ParseDate(date); err != nil {
			return nil, fmt.Errorf("%q: use YYYY-MM-DD dates", entry)
		}
		h, err := strconv.Atoi(hours)
		if err != nil || h < 0 || h > domain.MaxWeeklyHours {
			return nil, fmt.Errorf("%q: hours must be between 0 and %d", entry, domain.MaxWeeklyHours)
		}
		out = append(out, importer.BreakpointImport{Date: date, Hours: h})
	}
	return out, nil
}

func formatBreakpointList(b importer.BreakpointsImport) string {
	parts := make([]string, 0, len(b))
	for _, bp := range b {
		parts = append(parts, fmt.Sprintf("%s=%d", bp.Date, bp.Hours))
	}
	return strings.Join(parts, ", ")
}
