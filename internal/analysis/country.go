package analysis

import (
	"sort"
	"strings"

	"github.com/streamlens/streamlens/internal/catalog"
)

// CountryCount is one country with the number of titles attributed to it.
type CountryCount struct {
	Country string
	Count   int
}

// CountryCounts explodes the comma-separated country column into
// per-country occurrence counts. Rows with an empty country field are
// skipped. Every non-empty token after trimming increments its country,
// so a country listed twice in one row counts twice.
func CountryCounts(ds *catalog.Dataset, column string) map[string]int {
	counts := make(map[string]int)
	for _, raw := range ds.Column(column) {
		if raw == "" {
			continue
		}
		for _, token := range strings.Split(raw, ",") {
			country := strings.TrimSpace(token)
			if country == "" {
				continue
			}
			counts[country]++
		}
	}
	return counts
}

// RankCountries sorts the count table descending by count and returns the
// top n entries. Equal counts are ordered alphabetically ascending.
func RankCountries(counts map[string]int, n int) []CountryCount {
	ranked := make([]CountryCount, 0, len(counts))
	for country, count := range counts {
		ranked = append(ranked, CountryCount{Country: country, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Country < ranked[j].Country
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
