// Package cmd wires the CLI entry point: flags, config resolution,
// and launching the TUI.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ajay0548/SGC-PRO/internal/app"
	"github.com/Ajay0548/SGC-PRO/internal/config"
	"github.com/Ajay0548/SGC-PRO/internal/log"
	"github.com/Ajay0548/SGC-PRO/internal/registry"
	"github.com/Ajay0548/SGC-PRO/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color
	// BEFORE the Bubble Tea program starts, so the OSC 11 response
	// cannot race the input loop and show up as garbage in text
	// fields. See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "sgc",
	Short:   "A terminal ui for student grade keeping",
	Long:    `A terminal user interface for recording student marks, computing totals, averages and letter grades, and exporting reports to CSV or XLSX.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/sgc/config.yaml)")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log to .sgc/debug.log")
	rootCmd.Flags().String("export-path", "",
		"CSV export destination (overrides export.csv_path)")

	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
	_ = viper.BindPFlag("export.csv_path", rootCmd.Flags().Lookup("export-path"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("export.format", defaults.Export.Format)
	viper.SetDefault("export.csv_path", defaults.Export.CSVPath)
	viper.SetDefault("export.xlsx_path", defaults.Export.XLSXPath)
	viper.SetDefault("ui.show_count", defaults.UI.ShowCount)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .sgc/config.yaml (current directory)
		// 2. ~/.config/sgc/config.yaml (user config)
		if _, err := os.Stat(".sgc/config.yaml"); err == nil {
			viper.SetConfigFile(".sgc/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "sgc"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a default one.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".sgc/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If the write fails, continue with built-in defaults.
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug || os.Getenv("SGC_DEBUG") != "" {
		if err := os.MkdirAll(".sgc", 0o750); err == nil {
			cleanup, err := log.Init(filepath.Join(".sgc", "debug.log"))
			if err == nil {
				defer cleanup()
			}
		}
	} else {
		log.SetEnabled(false)
	}

	styles.Apply(styles.Theme{
		Highlight: cfg.Theme.Highlight,
		Subtle:    cfg.Theme.Subtle,
		Error:     cfg.Theme.Error,
		Success:   cfg.Theme.Success,
	})

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = ".sgc/config.yaml"
	}

	model := app.New(registry.New(), &cfg, configPath)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
