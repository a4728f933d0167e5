package analysis

import (
	"sort"

	"github.com/streamlens/streamlens/internal/catalog"
)

// TypeCount is one content-type bucket with its share of the dataset.
type TypeCount struct {
	Type    string
	Count   int
	Percent float64
}

// TypeRatio groups rows by the value of the given column and computes each
// group's percentage of the total row count. Results are ordered by count
// descending, ties alphabetically.
func TypeRatio(ds *catalog.Dataset, column string) []TypeCount {
	counts := make(map[string]int)
	for _, value := range ds.Column(column) {
		counts[value]++
	}

	result := make([]TypeCount, 0, len(counts))
	total := ds.Len()
	for value, count := range counts {
		tc := TypeCount{Type: value, Count: count}
		if total > 0 {
			tc.Percent = float64(count) / float64(total) * 100
		}
		result = append(result, tc)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Type < result[j].Type
	})
	return result
}

// MovieTVRatio returns how many TV shows exist per movie, as in
// "1:<ratio>". The second return is false when either bucket is absent.
func MovieTVRatio(counts []TypeCount) (float64, bool) {
	var movies, shows int
	for _, tc := range counts {
		switch tc.Type {
		case "Movie":
			movies = tc.Count
		case "TV Show":
			shows = tc.Count
		}
	}
	if movies == 0 || shows == 0 {
		return 0, false
	}
	return float64(shows) / float64(movies), true
}
