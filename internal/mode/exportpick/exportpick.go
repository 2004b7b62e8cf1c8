// Package exportpick implements the export mode: pick an output
// format, write the report file(s), and remember the chosen format in
// the config file.
package exportpick

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ajay0548/SGC-PRO/internal/config"
	"github.com/Ajay0548/SGC-PRO/internal/export"
	"github.com/Ajay0548/SGC-PRO/internal/log"
	"github.com/Ajay0548/SGC-PRO/internal/mode"
	"github.com/Ajay0548/SGC-PRO/internal/ui/styles"
)

var formats = []string{config.FormatCSV, config.FormatXLSX, config.FormatBoth}

// Model is the export format picker controller.
type Model struct {
	services mode.Services
	cursor   int
	width    int
	height   int
}

// New creates the export mode with the cursor on the configured format.
func New(services mode.Services) Model {
	m := Model{services: services}
	for i, f := range formats {
		if f == services.Config.Export.Format {
			m.cursor = i
		}
	}
	return m
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, mode.Back()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(formats)-1 {
			m.cursor++
		}
	case "enter":
		return m, m.export(formats[m.cursor])
	}
	return m, nil
}

// export writes the selected format(s) and returns to the menu. An
// export failure aborts only the export; the registry is untouched
// either way.
func (m Model) export(format string) tea.Cmd {
	if m.services.Registry.Len() == 0 {
		return tea.Batch(mode.Toast("No students to export.", mode.ToastInfo), mode.Back())
	}

	var paths []string
	if format == config.FormatCSV || format == config.FormatBoth {
		if err := export.ExportCSV(m.services.Config.Export.CSVPath, m.services.Registry); err != nil {
			log.ErrorErr(log.CatExport, "csv export failed", err)
			return tea.Batch(mode.Toast(err.Error(), mode.ToastError), mode.Back())
		}
		paths = append(paths, m.services.Config.Export.CSVPath)
	}
	if format == config.FormatXLSX || format == config.FormatBoth {
		if err := export.ExportXLSX(m.services.Config.Export.XLSXPath, m.services.Registry); err != nil {
			log.ErrorErr(log.CatExport, "xlsx export failed", err)
			return tea.Batch(mode.Toast(err.Error(), mode.ToastError), mode.Back())
		}
		paths = append(paths, m.services.Config.Export.XLSXPath)
	}

	// Remember the chosen format for next time. A save failure is not
	// worth interrupting a successful export.
	if format != m.services.Config.Export.Format {
		m.services.Config.Export.Format = format
		if err := config.SaveExportFormat(m.services.ConfigPath, format); err != nil {
			log.ErrorErr(log.CatConfig, "saving export format failed", err)
		}
	}

	toast := fmt.Sprintf("Exported to: %s", strings.Join(paths, ", "))
	return tea.Batch(mode.Toast(toast, mode.ToastSuccess), mode.Back())
}

// View implements mode.Controller.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Export reports"))
	b.WriteString("\n\n")
	b.WriteString("Format:\n")

	labels := map[string]string{
		config.FormatCSV:  fmt.Sprintf("CSV  (%s)", m.services.Config.Export.CSVPath),
		config.FormatXLSX: fmt.Sprintf("XLSX (%s)", m.services.Config.Export.XLSXPath),
		config.FormatBoth: "Both",
	}
	for i, f := range formats {
		line := labels[f]
		if i == m.cursor {
			line = styles.MenuSelected.Render("> " + line)
		} else {
			line = styles.MenuItem.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render("enter export · esc back"))
	return b.String()
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	return m
}
