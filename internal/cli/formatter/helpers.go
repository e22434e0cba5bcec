package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// NeverLabel stands in for a deadline that is never reached.
const NeverLabel = "never"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatDeadline renders a deadline as YYYY-MM-DD, or "never" when nil.
func FormatDeadline(d *time.Time) string {
	if d == nil {
		return NeverLabel
	}
	return d.Format(domain.DateLayout)
}

// HumanDate returns a date like "Mon 16 Mar 2020".
func HumanDate(t time.Time) string {
	return t.Format("Mon 2 Jan 2006")
}

// CalendarSpan describes how many calendar days a deadline is from the start,
// counting the start day itself: "1 day", "18 days".
func CalendarSpan(start time.Time, deadline *time.Time) string {
	if deadline == nil {
		return "--"
	}
	days := domain.DaysBetween(start, *deadline) + 1
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// FormatHours renders whole hours, e.g. "39h".
func FormatHours(h int) string {
	if h <= 0 {
		return "0h"
	}
	return fmt.Sprintf("%dh", h)
}
