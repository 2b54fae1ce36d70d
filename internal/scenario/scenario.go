package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"opportunity-engine/internal/model"
)

var ErrMissingOptions = errors.New("scenario must define option_a and option_b")

// Scenario is a saved comparison, stored as YAML.
type Scenario struct {
	Name       string           `yaml:"name"`
	Parameters model.Parameters `yaml:"parameters"`
	OptionA    *model.Option    `yaml:"option_a"`
	OptionB    *model.Option    `yaml:"option_b"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.OptionA == nil || s.OptionB == nil {
		return nil, ErrMissingOptions
	}
	return &s, nil
}

// Save writes s to path with a short header comment.
func Save(s *Scenario, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	header := []byte("# Opportunity cost scenario\n# rates are percentages; years count from 1\n\n")
	return os.WriteFile(path, append(header, data...), 0644)
}

func (s *Scenario) Request() *model.CalculationRequest {
	return &model.CalculationRequest{
		TenantID:   s.Name,
		Parameters: s.Parameters,
		OptionA:    *s.OptionA,
		OptionB:    *s.OptionB,
	}
}
