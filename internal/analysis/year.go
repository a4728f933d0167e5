package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/streamlens/streamlens/internal/catalog"
)

// YearCount is one release year with its title count.
type YearCount struct {
	Year  int
	Count int
}

// YearCounts builds the release-year frequency table. Rows whose year is
// empty or not parseable as a number are excluded.
func YearCounts(ds *catalog.Dataset, column string) map[int]int {
	counts := make(map[int]int)
	for _, raw := range ds.Column(column) {
		year, ok := parseYear(raw)
		if !ok {
			continue
		}
		counts[year]++
	}
	return counts
}

// Mode returns the year(s) with the maximum count, sorted ascending, and
// that count. An empty table yields nil and zero.
func Mode(counts map[int]int) ([]int, int) {
	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}
	if maxCount == 0 {
		return nil, 0
	}
	var years []int
	for year, count := range counts {
		if count == maxCount {
			years = append(years, year)
		}
	}
	sort.Ints(years)
	return years, maxCount
}

// TopYears returns the n highest-volume years, count descending, with
// more recent years first on equal counts.
func TopYears(counts map[int]int, n int) []YearCount {
	ranked := make([]YearCount, 0, len(counts))
	for year, count := range counts {
		ranked = append(ranked, YearCount{Year: year, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Year > ranked[j].Year
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// parseYear accepts plain integers and float-styled exports like "2018.0".
func parseYear(raw string) (int, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, false
	}
	if year, err := strconv.Atoi(value); err == nil {
		return year, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}
