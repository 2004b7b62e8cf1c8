// Package export writes the student registry to CSV and XLSX files.
//
// Both formats share one column contract: ID, Name, then the union of
// subjects in first-seen order across students in registry order, then
// Total, Average, Grade. Per-subject cells are blank for students with
// no mark in that subject. Changing the column order breaks downstream
// consumers of the files.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ajay0548/SGC-PRO/internal/log"
	"github.com/Ajay0548/SGC-PRO/internal/registry"
)

// DefaultCSVName is the CSV filename used when config does not
// override it.
const DefaultCSVName = "student_report.csv"

// WriteCSV writes the full registry report to w.
func WriteCSV(w io.Writer, reg *registry.Registry) error {
	subjects := reg.AllSubjects()

	header := make([]string, 0, len(subjects)+5)
	header = append(header, "ID", "Name")
	header = append(header, subjects...)
	header = append(header, "Total", "Average", "Grade")
	if err := writeRow(w, escapeAll(header)); err != nil {
		return err
	}

	for _, s := range reg.Students() {
		row := make([]string, 0, len(subjects)+5)
		row = append(row, escape(s.ID()), escape(s.Name()))
		for _, subj := range subjects {
			if mark, ok := s.Mark(subj); ok {
				// %.2f is locale-independent; never needs escaping.
				row = append(row, fmt.Sprintf("%.2f", mark))
			} else {
				row = append(row, "")
			}
		}
		row = append(row,
			fmt.Sprintf("%.2f", s.Total()),
			fmt.Sprintf("%.2f", s.Average()),
			s.Grade(),
		)
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ExportCSV writes the registry report to a file at path. Partial
// output may remain on failure but the file handle never leaks.
func ExportCSV(path string, reg *registry.Registry) error {
	f, err := os.Create(path) //nolint:gosec // G304: path comes from config
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	werr := WriteCSV(f, reg)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("writing %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("closing %s: %w", path, cerr)
	}

	log.Info(log.CatExport, "csv written", "path", path, "students", reg.Len())
	return nil
}

// writeRow emits one comma-joined record with a \n line ending.
// Fields must already be escaped.
func writeRow(w io.Writer, fields []string) error {
	_, err := io.WriteString(w, strings.Join(fields, ",")+"\n")
	return err
}

// escape wraps a field in double quotes, doubling inner quotes, iff it
// contains a comma, a double quote, or a newline. encoding/csv is not
// used here because it additionally quotes fields with leading spaces
// and bare \r, which the file contract does not allow.
func escape(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

func escapeAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = escape(f)
	}
	return out
}
