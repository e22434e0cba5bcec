package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSetup = `{
  "estimatedWorkHours": 39,
  "inputEstimateScenario": "BEST_CASE",
  "safetyMargin": 0.3,
  "startDate": "2020-03-16",
  "currency": "GBP",
  "hourlyFee": 35.0,
  "weeklyAvailableHours": 30,
  "availabilityRestrictions": {
    "type": "END",
    "bestCase": { "2020-03-29": 10 },
    "worstCase": { "2020-03-29": 5, "2020-04-05": 10 }
  }
}`

func TestParseImportSchema_Sample(t *testing.T) {
	schema, err := ParseImportSchema([]byte(sampleSetup))
	require.NoError(t, err)

	assert.Equal(t, 39, schema.EstimatedWorkHours)
	assert.Equal(t, "BEST_CASE", schema.InputScenario)
	assert.Equal(t, 0.3, schema.SafetyMargin)
	assert.Equal(t, "2020-03-16", schema.StartDate)
	assert.Equal(t, "GBP", schema.Currency)
	assert.Equal(t, 35.0, schema.HourlyFee)
	assert.Equal(t, 30, schema.WeeklyAvailableHours)

	require.NotNil(t, schema.Restrictions)
	assert.Equal(t, "END", schema.Restrictions.Type)
	assert.Equal(t, BreakpointsImport{{Date: "2020-03-29", Hours: 10}}, schema.Restrictions.BestCase)
	assert.Equal(t, BreakpointsImport{
		{Date: "2020-03-29", Hours: 5},
		{Date: "2020-04-05", Hours: 10},
	}, schema.Restrictions.WorstCase)

	assert.Empty(t, ValidateImportSchema(schema))
}

func TestParseImportSchema_KeepsKeyOrder(t *testing.T) {
	doc := `{"type": "START", "bestCase": {"2020-04-05": 10, "2020-03-29": 20}, "worstCase": {}}`

	var r RestrictionsImport
	require.NoError(t, json.Unmarshal([]byte(doc), &r))
	assert.Equal(t, BreakpointsImport{
		{Date: "2020-04-05", Hours: 10},
		{Date: "2020-03-29", Hours: 20},
	}, r.BestCase)
	assert.Empty(t, r.WorstCase)
}

func TestParseImportSchema_UnorderedKeysFailConversion(t *testing.T) {
	doc := `{
	  "estimatedWorkHours": 10, "inputEstimateScenario": "BEST_CASE", "safetyMargin": 0.1,
	  "currency": "GBP", "hourlyFee": 10, "weeklyAvailableHours": 20,
	  "availabilityRestrictions": {"type": "END", "bestCase": {"2020-03-29": 10, "2020-03-20": 10}}
	}`
	schema, err := ParseImportSchema([]byte(doc))
	require.NoError(t, err)
	require.Empty(t, ValidateImportSchema(schema))

	_, err = Convert(schema, domain.MustDate("2020-03-01"))
	var schedErr *domain.InvalidScheduleError
	assert.True(t, errors.As(err, &schedErr))
}

func TestParseImportSchema_DuplicateKeysSurviveDecoding(t *testing.T) {
	doc := `{"type": "END", "bestCase": {"2020-03-29": 10, "2020-03-29": 5}}`

	var r RestrictionsImport
	require.NoError(t, json.Unmarshal([]byte(doc), &r))
	require.Len(t, r.BestCase, 2)

	_, err := convertRestrictions(&r)
	var schedErr *domain.InvalidScheduleError
	require.True(t, errors.As(err, &schedErr))
	assert.Contains(t, err.Error(), "duplicate date")
}

func TestParseImportSchema_NullBreakpoints(t *testing.T) {
	doc := `{"type": "END", "bestCase": null}`

	var r RestrictionsImport
	require.NoError(t, json.Unmarshal([]byte(doc), &r))
	assert.Empty(t, r.BestCase)
}

func TestParseImportSchema_RejectsArrayBreakpoints(t *testing.T) {
	doc := `{"type": "END", "bestCase": [10, 20]}`

	var r RestrictionsImport
	assert.Error(t, json.Unmarshal([]byte(doc), &r))
}

func TestParseImportSchema_RejectsNonIntegerHours(t *testing.T) {
	doc := `{"type": "END", "bestCase": {"2020-03-29": "ten"}}`

	var r RestrictionsImport
	err := json.Unmarshal([]byte(doc), &r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2020-03-29")
}

func TestParseImportSchema_Malformed(t *testing.T) {
	_, err := ParseImportSchema([]byte(`{"estimatedWorkHours": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing setup file")
}

func TestEncode_RoundTrip(t *testing.T) {
	schema, err := ParseImportSchema([]byte(sampleSetup))
	require.NoError(t, err)

	data, err := Encode(schema)
	require.NoError(t, err)

	again, err := ParseImportSchema(data)
	require.NoError(t, err)
	assert.Equal(t, schema, again)
}

func TestLoadImportSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSetup), 0644))

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	assert.Equal(t, 39, schema.EstimatedWorkHours)

	_, err = LoadImportSchema(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
