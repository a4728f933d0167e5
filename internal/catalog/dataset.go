package catalog

// Dataset holds one loaded catalog file: a header row plus all data rows,
// everything kept as raw strings. Column typing is left to the consumers.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// Len returns the number of data rows (the header is not counted).
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// ColumnIndex returns the position of the named column, or -1 if the
// header row does not contain it.
func (d *Dataset) ColumnIndex(name string) int {
	for i, h := range d.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns all values of the named column in row order. Rows that
// are shorter than the header contribute an empty string. A nil slice is
// returned for unknown columns.
func (d *Dataset) Column(name string) []string {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values
}
