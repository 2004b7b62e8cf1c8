package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Ajay0548/SGC-PRO/internal/log"
	"github.com/Ajay0548/SGC-PRO/internal/registry"
)

// DefaultXLSXName is the XLSX filename used when config does not
// override it.
const DefaultXLSXName = "student_report.xlsx"

const sheetName = "Report"

// ExportXLSX writes the registry report to an Excel workbook at path.
// Column layout matches the CSV contract; marks, totals, and averages
// are written as numbers so spreadsheet formulas work on them.
func ExportXLSX(path string, reg *registry.Registry) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	subjects := reg.AllSubjects()

	header := make([]any, 0, len(subjects)+5)
	header = append(header, "ID", "Name")
	for _, subj := range subjects {
		header = append(header, subj)
	}
	header = append(header, "Total", "Average", "Grade")
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	boldID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	endCell, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheetName, "A1", endCell, boldID); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, s := range reg.Students() {
		row := make([]any, 0, len(subjects)+5)
		row = append(row, s.ID(), s.Name())
		for _, subj := range subjects {
			if mark, ok := s.Mark(subj); ok {
				row = append(row, mark)
			} else {
				row = append(row, nil)
			}
		}
		row = append(row, s.Total(), s.Average(), s.Grade())
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Info(log.CatExport, "xlsx written", "path", path, "students", reg.Len())
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}
