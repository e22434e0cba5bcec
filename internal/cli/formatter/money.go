package formatter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money formats amounts as a locale-specific currency symbol followed by a
// grouped number with at most two fraction digits.
type Money struct {
	printer *message.Printer
}

func NewMoney(tag language.Tag) *Money {
	return &Money{printer: message.NewPrinter(tag)}
}

// Format renders amount in the given ISO 4217 currency. Amounts are rounded
// half-up to cents and trailing zero fractions are dropped: 1750 -> "£1,750",
// 12.345 -> "£12.35". Unknown codes fall back to the code itself as prefix.
func (m *Money) Format(amount float64, code string) string {
	return m.Symbol(code) + m.Number(amount)
}

// Symbol returns the currency symbol for code in the printer's locale.
func (m *Money) Symbol(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strings.ToUpper(code) + " "
	}
	return m.printer.Sprint(currency.Symbol(unit))
}

// Number renders amount grouped, with 0 to 2 fraction digits.
func (m *Money) Number(amount float64) string {
	return m.printer.Sprint(number.Decimal(roundHalfUp(amount, 2), number.MaxFractionDigits(2)))
}

// roundHalfUp rounds the shortest decimal form of v half away from zero, so
// 2.675 becomes 2.68 and 10000000.075 becomes 10000000.08.
func roundHalfUp(v float64, digits int32) float64 {
	return decimal.NewFromFloat(v).Round(digits).InexactFloat64()
}

// FormatMargin renders a fee with its margin, e.g. "£1,750 ±£420".
func (m *Money) FormatMargin(fee, margin float64, code string) string {
	return fmt.Sprintf("%s ±%s", m.Format(fee, code), m.Format(margin, code))
}
