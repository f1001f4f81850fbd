// Package config provides configuration loading for the perphix tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the complete perphix configuration.
type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Deidentify DeidentifyConfig `yaml:"deidentify"`
}

// DatasetConfig overrides the info block written into base annotation files.
type DatasetConfig struct {
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Version     string `yaml:"version"`
	Year        int    `yaml:"year"`
	Contributor string `yaml:"contributor"`
}

// DeidentifyConfig configures DICOM de-identification.
type DeidentifyConfig struct {
	// PatientName replaces the PatientName tag in scrubbed files.
	PatientName string `yaml:"patient_name"`
	// CaseID replaces the PatientID tag. A random id is generated per
	// invocation when empty.
	CaseID string `yaml:"case_id"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Description: "Percutaneous fracture fixation. If you use this dataset, kindly cite the paper.",
			URL:         "https://github.com/arcadelab/perphix",
			Version:     "0.1",
			Year:        2023,
			Contributor: "Benjamin D. Killeen, ARCADE Lab, Johns Hopkins University",
		},
		Deidentify: DeidentifyConfig{
			PatientName: "Anonymous",
			CaseID:      "", // Generate per invocation
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Dataset.Version == "" {
		return fmt.Errorf("dataset.version is required")
	}
	if c.Dataset.Year < 0 {
		return fmt.Errorf("dataset.year must not be negative")
	}
	if c.Deidentify.PatientName == "" {
		return fmt.Errorf("deidentify.patient_name is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, layered over the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
