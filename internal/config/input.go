package config

import (
	"fmt"
	"os"

	"github.com/jmwhitney/locumcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// ContractFile is the on-disk shape of a contract calculation request.
type ContractFile struct {
	Contract domain.ContractInput `yaml:"contract"`
}

// InputParser handles parsing of contract input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a contract input from a YAML file and validates the
// boundary constraints the engine assumes (enumerated jurisdiction and
// filing status, well-formed numbers).
func (ip *InputParser) LoadFromFile(filename string) (*domain.ContractInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file ContractFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	contract, err := ip.Normalize(file.Contract)
	if err != nil {
		return nil, fmt.Errorf("contract validation failed: %w", err)
	}
	return contract, nil
}

// Normalize canonicalizes the enum fields of a raw contract input, rejecting
// values outside the closed enumerations before they can reach the engine.
func (ip *InputParser) Normalize(in domain.ContractInput) (*domain.ContractInput, error) {
	jurisdiction, err := domain.ParseJurisdiction(string(in.Jurisdiction))
	if err != nil {
		return nil, err
	}
	in.Jurisdiction = jurisdiction

	status, err := domain.ParseFilingStatus(string(in.FilingStatus))
	if err != nil {
		return nil, err
	}
	in.FilingStatus = status

	if in.DurationWeeks < 1 {
		return nil, fmt.Errorf("duration_weeks must be at least 1, got %d", in.DurationWeeks)
	}
	return &in, nil
}
