package formatter

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMoney_FormatBritish(t *testing.T) {
	m := NewMoney(language.BritishEnglish)

	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"whole pounds", 1750, "GBP", "£1,750"},
		{"margin", 420, "GBP", "£420"},
		{"pence kept", 12.5, "GBP", "£12.5"},
		{"rounded half up", 2.675, "GBP", "£2.68"},
		{"rounded down", 10.004, "GBP", "£10"},
		{"large", 1234567.891, "GBP", "£1,234,567.89"},
		{"ten million half up", 10000000.075, "GBP", "£10,000,000.08"},
		{"ten million half up to tenths", 10000000.495, "GBP", "£10,000,000.5"},
		{"billions", 1234567890.125, "GBP", "£1,234,567,890.13"},
		{"zero", 0, "GBP", "£0"},
		{"euro", 99.99, "EUR", "€99.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Format(tt.amount, tt.code))
		})
	}
}

func TestMoney_UnknownCodeFallsBackToCode(t *testing.T) {
	m := NewMoney(language.BritishEnglish)
	assert.Equal(t, "ZZZ 5", m.Format(5, "zzz"))
}

func TestMoney_GermanGrouping(t *testing.T) {
	m := NewMoney(language.German)
	assert.Equal(t, "1.750,5", m.Number(1750.5))
}

func TestMoney_FormatMargin(t *testing.T) {
	m := NewMoney(language.BritishEnglish)
	assert.Equal(t, "£1,750 ±£420", m.FormatMargin(1750, 420, "GBP"))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 2.68, roundHalfUp(2.675, 2))
	assert.Equal(t, 1.01, roundHalfUp(1.005, 2))
	assert.Equal(t, -2.68, roundHalfUp(-2.675, 2))
	assert.Equal(t, 3.0, roundHalfUp(3, 2))
	assert.Equal(t, 10000000.08, roundHalfUp(10000000.075, 2))
	assert.Equal(t, 10000000.5, roundHalfUp(10000000.495, 2))
}

func TestRoundHalfUp_MatchesDecimalHalfUpAtScale(t *testing.T) {
	// Every x.xx5 amount from 1e7 upwards must round up in the last cent.
	for cents := int64(0); cents < 100; cents++ {
		whole := int64(10000000) + cents*12345
		v, err := strconv.ParseFloat(fmt.Sprintf("%d.%02d5", whole, cents), 64)
		require.NoError(t, err)
		want := decimal.New(whole*100+cents+1, -2).InexactFloat64()
		assert.Equal(t, want, roundHalfUp(v, 2), "%.3f", v)
	}
}
