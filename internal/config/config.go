// Package config reads and writes teller.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level teller.yaml configuration.
type Config struct {
	Ledger LedgerConfig `yaml:"ledger"`
	Demo   DemoConfig   `yaml:"demo,omitempty"`
}

// LedgerConfig controls core ledger behavior.
type LedgerConfig struct {
	// HistoryLimit caps the undo history. 0 keeps it unbounded.
	HistoryLimit int `yaml:"history_limit"`
}

// DemoConfig seeds a demo session.
type DemoConfig struct {
	Customers []DemoCustomer `yaml:"customers"`
}

// DemoCustomer is a customer to create at demo start, with accounts.
type DemoCustomer struct {
	Name     string        `yaml:"name"`
	Accounts []DemoAccount `yaml:"accounts,omitempty"`
}

// DemoAccount is an account to open for a demo customer.
type DemoAccount struct {
	Type    string `yaml:"type"`    // generic, savings, current, fixed-deposit
	Balance string `yaml:"balance"` // decimal string
}

// Load reads a teller.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with built-in demo seed data and an unbounded
// undo history.
func Default() *Config {
	return &Config{
		Demo: DemoConfig{
			Customers: []DemoCustomer{
				{
					Name: "Shivani",
					Accounts: []DemoAccount{
						{Type: "savings", Balance: "1500"},
					},
				},
				{
					Name: "Arjun",
					Accounts: []DemoAccount{
						{Type: "current", Balance: "1000"},
						{Type: "fixed-deposit", Balance: "5000"},
					},
				},
			},
		},
	}
}
