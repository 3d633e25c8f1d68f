package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// rosterHeaders are the columns the shift-upload screen expects, in order.
var rosterHeaders = []string{
	"Shift_date_from",
	"Shift_date_to",
	"userid",
	"STAGE_NAME",
	"SHIFT_ID",
	"LINE",
}

// EnsureRosterTemplate generates the upload template workbook at path if it
// does not already exist, and returns the path to serve.
func EnsureRosterTemplate(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating template directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"

	for i, header := range rosterHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	// One example row so the date format is unambiguous to operators.
	example := []string{"2024-05-01", "2024-05-07", "EMP001", "Lamination", "S1", "2A"}
	for i, value := range example {
		cell := fmt.Sprintf("%c2", 'A'+i)
		f.SetCellValue(sheet, cell, value)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving template: %w", err)
	}

	return path, nil
}
