package cli

import (
	"testing"

	"github.com/alexanderramin/deadline/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr bool
	}{
		{"date empty ok", validateOptionalDate, "", false},
		{"date ok", validateOptionalDate, "2020-03-16", false},
		{"date bad", validateOptionalDate, "16/03/2020", true},
		{"hours ok", validateWorkHours, "39", false},
		{"hours empty", validateWorkHours, "", true},
		{"hours zero", validateWorkHours, "0", true},
		{"hours max", validateWorkHours, "1000000", false},
		{"hours over", validateWorkHours, "1000001", true},
		{"weekly max", validateWeeklyHours, "168", false},
		{"weekly over", validateWeeklyHours, "169", true},
		{"margin ok", validateMargin, "0.3", false},
		{"margin one", validateMargin, "1", false},
		{"margin negative", validateMargin, "-0.1", true},
		{"fee zero", validateNonNegativeFloat, "0", false},
		{"fee negative", validateNonNegativeFloat, "-5", true},
		{"currency ok", validateCurrencyCode, "gbp", false},
		{"currency long", validateCurrencyCode, "POUND", true},
		{"breakpoints empty ok", validateBreakpointList, "", false},
		{"breakpoints bad", validateBreakpointList, "2020-03-29", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseBreakpointList(t *testing.T) {
	got, err := parseBreakpointList("2020-04-05=20, 2020-03-29: 10;2020-05-01=0\n")
	require.NoError(t, err)
	// Written order is kept even when dates are out of order.
	assert.Equal(t, importer.BreakpointsImport{
		{Date: "2020-04-05", Hours: 20},
		{Date: "2020-03-29", Hours: 10},
		{Date: "2020-05-01", Hours: 0},
	}, got)
}

func TestParseBreakpointList_Errors(t *testing.T) {
	for _, input := range []string{"2020-03-29", "2020-3-29=10", "2020-03-29=ten", "2020-03-29=200"} {
		_, err := parseBreakpointList(input)
		assert.Error(t, err, input)
	}
}

func TestFormatBreakpointList(t *testing.T) {
	b := importer.BreakpointsImport{{Date: "2020-03-29", Hours: 10}, {Date: "2020-04-05", Hours: 20}}
	assert.Equal(t, "2020-03-29=10, 2020-04-05=20", formatBreakpointList(b))

	back, err := parseBreakpointList(formatBreakpointList(b))
	require.NoError(t, err)
	assert.Equal(t, b, back)
}
