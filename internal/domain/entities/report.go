package entities

// ReportRow is a flat, insertion-ordered mapping from column name to a scalar
// value. Rows are written verbatim to the output workbook in the order the
// columns were set.
type ReportRow struct {
	keys   []string
	values map[string]any
}

// NewReportRow creates an empty row.
func NewReportRow() *ReportRow {
	return &ReportRow{values: make(map[string]any)}
}

// Set assigns a column value, preserving first-insertion order for the key.
func (r *ReportRow) Set(key string, value any) *ReportRow {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Keys returns the column names in insertion order.
func (r *ReportRow) Keys() []string {
	return r.keys
}

// Value returns the value stored under key, or nil when absent.
func (r *ReportRow) Value(key string) any {
	return r.values[key]
}

// WorkflowOutcome aggregates the result of one workflow run: pass/fail
// counters plus the ordered report rows. It is produced once per run and
// never mutated afterwards.
type WorkflowOutcome struct {
	Passed int
	Failed int
	Rows   []*ReportRow
}

// Append records one processed item.
func (o *WorkflowOutcome) Append(row *ReportRow, ok bool) {
	o.Rows = append(o.Rows, row)
	if ok {
		o.Passed++
	} else {
		o.Failed++
	}
}
