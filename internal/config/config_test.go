package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, FormatCSV, cfg.Export.Format)
	assert.Equal(t, "student_report.csv", cfg.Export.CSVPath)
	assert.Equal(t, "student_report.xlsx", cfg.Export.XLSXPath)
	assert.True(t, cfg.UI.ShowCount)
	assert.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"xlsx format", func(c *Config) { c.Export.Format = FormatXLSX }, false},
		{"both format", func(c *Config) { c.Export.Format = FormatBoth }, false},
		{"unknown format", func(c *Config) { c.Export.Format = "pdf" }, true},
		{"empty csv path", func(c *Config) { c.Export.CSVPath = "" }, true},
		{"empty xlsx path", func(c *Config) { c.Export.XLSXPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteDefaultConfig_RoundTripsThroughViper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	assert.Equal(t, Defaults(), cfg)
}

func TestSaveExportFormat_UpdatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveExportFormat(path, FormatXLSX))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: xlsx")
	// The yaml.Node surgery keeps comments from the template.
	assert.Contains(t, string(data), "# Export settings")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	assert.Equal(t, FormatXLSX, v.GetString("export.format"))
	assert.Equal(t, "student_report.csv", v.GetString("export.csv_path"))
}

func TestSaveExportFormat_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveExportFormat(path, FormatBoth))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	assert.Equal(t, FormatBoth, v.GetString("export.format"))
}
