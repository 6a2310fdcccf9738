package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/mortgo/internal/calculation"
	"github.com/rgehrsitz/mortgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of loan configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a loan configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.LoanConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a loan configuration document
func (ip *InputParser) Parse(data []byte) (*domain.LoanConfig, error) {
	var config domain.LoanConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.LoanConfig) error {
	if config == nil {
		return fmt.Errorf("configuration is required")
	}
	if err := calculation.ValidateLoanConfig(*config); err != nil {
		return fmt.Errorf("loan validation failed: %w", err)
	}
	return nil
}

// SaveToFile writes config as YAML
func (ip *InputParser) SaveToFile(filename string, config *domain.LoanConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
