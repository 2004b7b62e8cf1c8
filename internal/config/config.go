// Package config provides configuration types, defaults, and
// persistence for SGC.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ajay0548/SGC-PRO/internal/log"
)

// Export format values for ExportConfig.Format.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatBoth = "both"
)

// ExportConfig holds export destinations and format selection.
type ExportConfig struct {
	// Format selects what Export writes: "csv" (default), "xlsx", or "both".
	Format string `mapstructure:"format"`
	// CSVPath is the CSV destination (default: student_report.csv).
	CSVPath string `mapstructure:"csv_path"`
	// XLSXPath is the XLSX destination (default: student_report.xlsx).
	XLSXPath string `mapstructure:"xlsx_path"`
}

// UIConfig holds user interface options.
type UIConfig struct {
	// ShowCount shows the registered-student count under the menu title.
	ShowCount bool `mapstructure:"show_count"`
}

// ThemeConfig holds color overrides as hex strings (e.g. "#10B981").
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// Config holds all configuration options for SGC.
type Config struct {
	Export ExportConfig `mapstructure:"export"`
	UI     UIConfig     `mapstructure:"ui"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Debug  bool         `mapstructure:"debug"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Export: ExportConfig{
			Format:   FormatCSV,
			CSVPath:  "student_report.csv",
			XLSXPath: "student_report.xlsx",
		},
		UI: UIConfig{
			ShowCount: true,
		},
		Theme: ThemeConfig{
			Highlight: "#7D56F4",
			Subtle:    "#6B7280",
			Error:     "#EF4444",
			Success:   "#10B981",
		},
	}
}

// Validate checks cross-field constraints.
func Validate(cfg Config) error {
	switch cfg.Export.Format {
	case FormatCSV, FormatXLSX, FormatBoth:
	default:
		return fmt.Errorf("invalid export format %q (want csv, xlsx, or both)", cfg.Export.Format)
	}
	if cfg.Export.CSVPath == "" {
		return fmt.Errorf("export.csv_path cannot be empty")
	}
	if cfg.Export.XLSXPath == "" {
		return fmt.Errorf("export.xlsx_path cannot be empty")
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string
// with comments.
func DefaultConfigTemplate() string {
	return `# SGC Configuration

# Export settings
export:
  format: csv                       # What "Export reports" writes: csv, xlsx, or both
  csv_path: student_report.csv      # CSV destination
  xlsx_path: student_report.xlsx    # XLSX destination

# UI settings
ui:
  show_count: true    # Show registered-student count under the menu title

# Theme colors (hex)
theme:
  highlight: "#7D56F4"
  subtle: "#6B7280"
  error: "#EF4444"
  success: "#10B981"
`
}

// WriteDefaultConfig writes the commented default config to configPath,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
