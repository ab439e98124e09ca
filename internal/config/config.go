package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/banksms/internal/export"
)

// FileName is the default config file name.
const FileName = "banksms.yaml"

// Config represents the top-level banksms.yaml configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Scan   ScanConfig   `yaml:"scan"`
	Export ExportConfig `yaml:"export"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ScanConfig controls batch scanning.
type ScanConfig struct {
	Workers     int    `yaml:"workers"` // 0 = GOMAXPROCS
	StateFile   string `yaml:"state_file"`
	HistoryFile string `yaml:"history_file"`
}

// ExportConfig controls the expense sheet.
type ExportConfig struct {
	IncludeIncome   bool              `yaml:"include_income"`
	DateFormat      string            `yaml:"date_format"`
	Categories      []CategoryRule    `yaml:"categories,omitempty"`
	CategoryAliases map[string]string `yaml:"category_aliases,omitempty"`
}

// Rules converts the configured categories to export rules.
func (e ExportConfig) Rules() []export.Rule {
	rules := make([]export.Rule, 0, len(e.Categories))
	for _, c := range e.Categories {
		rules = append(rules, export.Rule{Keyword: c.Keyword, Category: c.Category})
	}
	return rules
}

// CategoryRule maps a keyword in the counterparty or message to a category.
type CategoryRule struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// Load reads a banksms.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
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

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Scan: ScanConfig{
			Workers:     4,
			StateFile:   ".banksms/seen-hashes",
			HistoryFile: ".banksms/scan-log.csv",
		},
		Export: ExportConfig{
			DateFormat: "2006-01-02",
			Categories: []CategoryRule{
				{Keyword: "swiggy", Category: "dinning"},
				{Keyword: "zomato", Category: "dinning"},
				{Keyword: "netflix", Category: "Entertainment"},
				{Keyword: "spotify", Category: "Entertainment"},
				{Keyword: "hotstar", Category: "Entertainment"},
				{Keyword: "bigbasket", Category: "household"},
				{Keyword: "electricity", Category: "bills"},
				{Keyword: "salon", Category: "grooming"},
				{Keyword: "loan", Category: "emi"},
				{Keyword: "atm withdrawal", Category: "misc"},
			},
			CategoryAliases: export.DefaultAliases(),
		},
	}
}
