package scheduler

import (
	"errors"
	"testing"

	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveWorkHours_FromBestCase(t *testing.T) {
	hours, err := DeriveWorkHours(39, domain.ScenarioBestCase, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 39, hours[domain.ScenarioBestCase])
	assert.Equal(t, 50, hours[domain.ScenarioRealistic]) // floor(50.7)
	assert.Equal(t, 62, hours[domain.ScenarioWorstCase]) // floor(62.4)
}

func TestDeriveWorkHours_FromRealistic(t *testing.T) {
	hours, err := DeriveWorkHours(100, domain.ScenarioRealistic, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 75, hours[domain.ScenarioBestCase])
	assert.Equal(t, 100, hours[domain.ScenarioRealistic])
	assert.Equal(t, 150, hours[domain.ScenarioWorstCase])
}

func TestDeriveWorkHours_ZeroMargin(t *testing.T) {
	hours, err := DeriveWorkHours(40, domain.ScenarioRealistic, 0)
	require.NoError(t, err)
	for _, sc := range domain.Scenarios {
		assert.Equal(t, 40, hours[sc], "scenario %s", sc)
	}
}

func TestDeriveWorkHours_WorstCaseUnsupported(t *testing.T) {
	_, err := DeriveWorkHours(40, domain.ScenarioWorstCase, 0.3)
	require.Error(t, err)

	var unsupported *domain.UnsupportedScenarioError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, domain.ScenarioWorstCase, unsupported.Scenario)
}

func TestMidpointHours(t *testing.T) {
	assert.Equal(t, 51, MidpointHours(39, 62))
	assert.Equal(t, 50, MidpointHours(40, 60))
}

func TestMidpointDeadline(t *testing.T) {
	best := domain.MustDate("2020-04-02")

	worst := domain.MustDate("2020-04-12")
	requireDate(t, "2020-04-07", MidpointDeadline(&best, &worst))

	// Odd sums round up.
	worst = domain.MustDate("2020-04-11")
	requireDate(t, "2020-04-07", MidpointDeadline(&best, &worst))

	assert.Nil(t, MidpointDeadline(&best, nil))
	assert.Nil(t, MidpointDeadline(nil, &worst))
}
