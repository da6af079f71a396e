package repositories

import "github.com/rrabelo/bb2ado/internal/domain/entities"

// ReportWriter persists an ordered sequence of report rows as a single-sheet
// workbook at the given filename, overwriting any existing file. The header
// row is taken from the first row's keys.
type ReportWriter interface {
	Write(filename string, rows []*entities.ReportRow) error
}
