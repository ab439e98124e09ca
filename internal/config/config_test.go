package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	cfg.Scan.Workers = 8
	cfg.Export.IncludeIncome = true
	cfg.Export.Categories = []CategoryRule{{Keyword: "uber", Category: "Travel"}}

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", got.Log.Level)
	assert.Equal(t, 8, got.Scan.Workers)
	assert.Equal(t, cfg.Scan.StateFile, got.Scan.StateFile)
	assert.True(t, got.Export.IncludeIncome)
	assert.Equal(t, cfg.Export.DateFormat, got.Export.DateFormat)
	require.Len(t, got.Export.Categories, 1)
	assert.Equal(t, "uber", got.Export.Categories[0].Keyword)
	assert.Equal(t, "Travel", got.Export.Categories[0].Category)
	assert.Equal(t, "Food & Dinning", got.Export.CategoryAliases["dinning"])
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.Equal(t, ".banksms/seen-hashes", cfg.Scan.StateFile)
	assert.Equal(t, ".banksms/scan-log.csv", cfg.Scan.HistoryFile)
	assert.False(t, cfg.Export.IncludeIncome)
	assert.Equal(t, "2006-01-02", cfg.Export.DateFormat)
	assert.NotEmpty(t, cfg.Export.Categories)
	assert.Len(t, cfg.Export.CategoryAliases, 6)
	assert.Equal(t, "Personal Care", cfg.Export.CategoryAliases["grooming"])
	assert.Equal(t, "EMI & Loans", cfg.Export.CategoryAliases["emi"])
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.Equal(t, "2006-01-02", cfg.Export.DateFormat)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "level: info")
	assert.Contains(t, contents, "workers: 4")
	assert.Contains(t, contents, "state_file: .banksms/seen-hashes")
	assert.Contains(t, contents, "history_file: .banksms/scan-log.csv")
	assert.Contains(t, contents, "include_income: false")
}

func TestExportRules(t *testing.T) {
	cfg := Default()
	rules := cfg.Export.Rules()
	require.Len(t, rules, len(cfg.Export.Categories))
	assert.Equal(t, "swiggy", rules[0].Keyword)
	assert.Equal(t, "dinning", rules[0].Category)
}
