package catalog

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
)

// Load reads a header-row CSV file into a Dataset. The file's existence is
// verified before any parse attempt; a missing file yields an error that
// wraps fs.ErrNotExist. onRow, if non-nil, is invoked once per data row so
// the caller can drive a progress indicator.
func Load(path string, onRow func()) (*Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("input file %s: %w", path, fs.ErrNotExist)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	delim, err := sniffDelimiter(file)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(file)
	reader.Comma = delim
	reader.FieldsPerRecord = -1 // column count is dataset-defined, not enforced

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file %s has no header row", path)
	}

	ds := &Dataset{
		Headers: records[0],
		Rows:    records[1:],
	}
	if onRow != nil {
		for range ds.Rows {
			onRow()
		}
	}
	return ds, nil
}

// sniffDelimiter inspects the first few lines of the file and picks the
// most frequent candidate delimiter, then rewinds the reader. Comma wins
// when nothing else shows up.
func sniffDelimiter(file *os.File) (rune, error) {
	sample := make([]byte, 8*1024)
	n, err := file.Read(sample)
	if err != nil && n == 0 {
		return 0, fmt.Errorf("failed to read sample: %w", err)
	}
	sample = sample[:n]

	counts := map[rune]int{',': 0, ';': 0, '\t': 0, '|': 0}
	lines := 0
	for i := 0; i < len(sample) && lines < 5; i++ {
		if sample[i] == '\n' {
			lines++
			continue
		}
		for delim := range counts {
			if sample[i] == byte(delim) {
				counts[delim]++
			}
		}
	}

	best := ','
	maxCount := 0
	for delim, count := range counts {
		if count > maxCount {
			maxCount = count
			best = delim
		}
	}

	if _, err := file.Seek(0, 0); err != nil {
		return 0, fmt.Errorf("failed to rewind file: %w", err)
	}
	return best, nil
}
