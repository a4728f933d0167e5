package cleaner

import (
	"strings"

	"github.com/streamlens/streamlens/internal/catalog"
)

// ColumnMissing reports how many values of one column are missing. An
// empty string counts as missing, matching how the rest of the pipeline
// excludes values.
type ColumnMissing struct {
	Column  string
	Count   int
	Percent float64
}

// Result is the outcome of a cleaning pass.
type Result struct {
	Dataset           *catalog.Dataset
	DuplicatesRemoved int
	Missing           []ColumnMissing
}

// Clean removes exact duplicate rows (first occurrence wins) and computes
// the per-column missing-value report on the deduplicated rows. The report
// is informational only; no rows are dropped for missing values.
func Clean(ds *catalog.Dataset) Result {
	deduped, removed := Dedupe(ds)
	return Result{
		Dataset:           deduped,
		DuplicatesRemoved: removed,
		Missing:           MissingReport(deduped),
	}
}

// Dedupe drops rows that are exact duplicates of an earlier row, keeping
// the first occurrence. Running it on an already-deduplicated dataset is a
// no-op.
func Dedupe(ds *catalog.Dataset) (*catalog.Dataset, int) {
	seen := make(map[string]struct{}, len(ds.Rows))
	kept := make([][]string, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		// \x1f never appears in CSV field data, so the join is a
		// collision-free row identity.
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	return &catalog.Dataset{Headers: ds.Headers, Rows: kept}, len(ds.Rows) - len(kept)
}

// MissingReport counts empty values per column, in header order. Columns
// with no missing values are included with a zero count so callers can
// filter as they see fit.
func MissingReport(ds *catalog.Dataset) []ColumnMissing {
	report := make([]ColumnMissing, len(ds.Headers))
	for i, header := range ds.Headers {
		report[i].Column = header
	}
	for _, row := range ds.Rows {
		for i := range ds.Headers {
			if i >= len(row) || row[i] == "" {
				report[i].Count++
			}
		}
	}
	if ds.Len() > 0 {
		for i := range report {
			report[i].Percent = float64(report[i].Count) / float64(ds.Len()) * 100
		}
	}
	return report
}
