package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a claimsight run.
type Config struct {
	DSN        string
	PolicyFile string `yaml:"policy_file"`
	LogFormat  string `yaml:"log_format"` // "text" or "json"
	LogLevel   string `yaml:"log_level"`

	// ask flags
	Insurer  string
	Plan     string
	BillFile string
	Question string
	Now      string // RFC3339 override for the engine clock
	Save     bool

	// export flags
	OutFile string
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	PolicyFile string `yaml:"policy_file"`
	LogFormat  string `yaml:"log_format"`
	LogLevel   string `yaml:"log_level"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Flag values already set take precedence over the file.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.PolicyFile == "" {
		c.PolicyFile = yc.PolicyFile
	}
	if c.LogFormat == "" {
		c.LogFormat = yc.LogFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = yc.LogLevel
	}
	return nil
}

// ValidateAsk checks the fields the ask command needs.
func (c *Config) ValidateAsk() error {
	if c.PolicyFile == "" {
		return fmt.Errorf("--policy-file or CLAIMSIGHT_POLICY is required")
	}
	if _, err := os.Stat(c.PolicyFile); err != nil {
		return fmt.Errorf("policy file not accessible: %w", err)
	}
	if c.Insurer == "" || c.Plan == "" {
		return fmt.Errorf("--insurer and --plan are required")
	}
	if c.BillFile == "" {
		return fmt.Errorf("--bill is required")
	}
	if _, err := os.Stat(c.BillFile); err != nil {
		return fmt.Errorf("bill file not accessible: %w", err)
	}
	if c.Question == "" {
		return fmt.Errorf("--question is required")
	}
	if c.Save && c.DSN == "" {
		return fmt.Errorf("--save requires --dsn or DATABASE_URL")
	}
	return nil
}

// ValidateWithDSN checks commands that talk to the database.
func (c *Config) ValidateWithDSN() error {
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}
