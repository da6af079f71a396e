//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rrabelo/bb2ado/internal/domain/entities"
	"github.com/rrabelo/bb2ado/internal/domain/repositories"
)

// SpyReportWriter implements repositories.ReportWriter as a spy, capturing
// the last filename and row sequence it was asked to persist.
type SpyReportWriter struct {
	WriteErr error

	// spy: inputs received
	Filename string
	Rows     []*entities.ReportRow
	Writes   int
}

var _ repositories.ReportWriter = (*SpyReportWriter)(nil)

func (w *SpyReportWriter) Write(filename string, rows []*entities.ReportRow) error {
	w.Writes++
	w.Filename = filename
	w.Rows = rows
	return w.WriteErr
}
