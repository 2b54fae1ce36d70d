package scenario

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opportunity-engine/internal/model"
)

const gradSchoolYAML = `
name: grad-school
parameters:
  years: 30
  market_rate: 7
  market_rate_source: sp500
option_a:
  name: Work now
  initial_salary: 55000
  salary_growth_rate: 3
option_b:
  name: Masters
  initial_salary: 85000
  salary_growth_rate: 4
  tuition_cost: 45000
  tuition_years: 2
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(gradSchoolYAML))
	require.NoError(t, err)

	assert.Equal(t, "grad-school", s.Name)
	assert.Equal(t, model.Parameters{Years: 30, MarketRate: 7, MarketRateSource: "sp500"}, s.Parameters)
	assert.Equal(t, 55000.0, s.OptionA.InitialSalary)
	assert.Equal(t, 2, s.OptionB.TuitionYears)
	assert.Equal(t, 0, s.OptionB.YearsDelay)

	req := s.Request()
	assert.Equal(t, "Masters", req.OptionB.Name)
	assert.Equal(t, "grad-school", req.TenantID)
}

func TestParseMissingOption(t *testing.T) {
	_, err := Parse([]byte("name: x\noption_a:\n  name: only one\n"))
	assert.ErrorIs(t, err, ErrMissingOptions)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("option_a: [unclosed"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	orig, err := Parse([]byte(gradSchoolYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, Save(orig, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, orig, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
