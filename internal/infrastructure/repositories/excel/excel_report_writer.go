// Package excel implements the ReportWriter port on top of excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

const sheetName = "Sheet1"

// ReportWriter writes report rows into a single-sheet xlsx workbook.
type ReportWriter struct{}

var _ repositories.ReportWriter = (*ReportWriter)(nil)

// NewReportWriter creates a report writer.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write persists the rows at filename, overwriting any existing file. The
// header comes from the first row's keys; rows with different keys are laid
// out against that same header. An empty sequence still produces a valid,
// empty workbook.
func (w *ReportWriter) Write(filename string, rows []*entities.ReportRow) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if len(rows) > 0 {
		header := rows[0].Keys()

		headerCells := make([]any, len(header))
		for i, key := range header {
			headerCells[i] = key
		}
		if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
			return fmt.Errorf("failed to write header row: %w", err)
		}

		for i, row := range rows {
			cells := make([]any, len(header))
			for j, key := range header {
				cells[j] = row.Value(key)
			}

			anchor, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell anchor: %w", err)
			}
			if err := f.SetSheetRow(sheetName, anchor, &cells); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", filename, err)
	}
	return nil
}
