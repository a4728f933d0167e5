package analysis

import (
	"fmt"
	"testing"

	"github.com/streamlens/streamlens/internal/catalog"
)

func countryDataset(values ...string) *catalog.Dataset {
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{v}
	}
	return &catalog.Dataset{Headers: []string{"country"}, Rows: rows}
}

func TestCountryCountsSplitsAndTrims(t *testing.T) {
	ds := countryDataset("USA, India, India", "United Kingdom", " France ,Belgium")
	counts := CountryCounts(ds, "country")

	want := map[string]int{
		"USA":            1,
		"India":          2, // duplicate token in one row counts per occurrence
		"United Kingdom": 1,
		"France":         1,
		"Belgium":        1,
	}
	if len(counts) != len(want) {
		t.Errorf("Expected %d countries, got %d: %v", len(want), len(counts), counts)
	}
	for country, n := range want {
		if counts[country] != n {
			t.Errorf("Country %s: expected %d, got %d", country, n, counts[country])
		}
	}
}

func TestCountryCountsSkipsEmpty(t *testing.T) {
	ds := countryDataset("", "Japan", "", " , ")
	counts := CountryCounts(ds, "country")

	if len(counts) != 1 || counts["Japan"] != 1 {
		t.Errorf("Expected only Japan counted, got %v", counts)
	}
	if _, ok := counts[""]; ok {
		t.Error("Empty string must not appear as a phantom country")
	}
}

func TestRankCountriesTopN(t *testing.T) {
	counts := make(map[string]int)
	for i := 1; i <= 15; i++ {
		counts[fmt.Sprintf("Country%02d", i)] = i
	}

	ranked := RankCountries(counts, 10)
	if len(ranked) != 10 {
		t.Fatalf("Expected top 10, got %d", len(ranked))
	}
	if ranked[0].Count != 15 || ranked[9].Count != 6 {
		t.Errorf("Expected counts 15..6, got %d..%d", ranked[0].Count, ranked[9].Count)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Count > ranked[i-1].Count {
			t.Errorf("Ranking not descending at %d: %v", i, ranked)
		}
	}
}

func TestRankCountriesTieBreakAlphabetical(t *testing.T) {
	ranked := RankCountries(map[string]int{"Spain": 2, "Mexico": 2, "Chile": 2}, 3)
	if ranked[0].Country != "Chile" || ranked[1].Country != "Mexico" || ranked[2].Country != "Spain" {
		t.Errorf("Equal counts must order alphabetically, got %v", ranked)
	}
}
