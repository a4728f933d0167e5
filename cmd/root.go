package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/streamlens/streamlens/internal/analysis"
	"github.com/streamlens/streamlens/internal/catalog"
	"github.com/streamlens/streamlens/internal/charts"
	"github.com/streamlens/streamlens/internal/cleaner"
)

const (
	typeColumn    = "type"
	countryColumn = "country"
	yearColumn    = "release_year"

	typeChartFile    = "movies_vs_tvshows.png"
	countryChartFile = "top_10_countries.png"
)

var (
	inputFile string
	plotsDir  string
	topN      int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "streamlens",
	Short: "Streaming catalog analysis CLI",
	Long: `A one-shot exploratory analysis tool for streaming-catalog
CSV exports: cleans the dataset, summarizes content types,
producing countries and release years, and renders bar charts`,
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("input") {
			if env := os.Getenv("STREAMLENS_INPUT"); env != "" {
				inputFile = env
			}
		}
		if !cmd.Flags().Changed("plots-dir") {
			if env := os.Getenv("STREAMLENS_PLOTS_DIR"); env != "" {
				plotsDir = env
			}
		}
		runAnalysis()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "netflix_titles.csv",
		"Input catalog CSV file")
	rootCmd.Flags().StringVar(&plotsDir, "plots-dir", "plots",
		"Directory for generated charts")
	rootCmd.Flags().IntVarP(&topN, "top", "t", 10,
		"Number of countries to rank")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Include zero-count columns in the missing-value report")
}

func runAnalysis() {
	banner("STREAMING CATALOG ANALYSIS")

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan][reset] Loading %s...", filepath.Base(inputFile))),
		progressbar.OptionSetWidth(20),
	)

	ds, err := catalog.Load(inputFile, func() { bar.Add(1) })
	bar.Finish()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cwd, _ := os.Getwd()
			fmt.Fprintf(os.Stderr, "Error: %s not found.\n", inputFile)
			fmt.Fprintf(os.Stderr, "Current directory: %s\n", cwd)
			os.Exit(1)
		}
		log.Fatalf("Failed to load %s: %v", inputFile, err)
	}
	fmt.Printf("Loaded %s records from %s\n\n", humanize.Comma(int64(ds.Len())), inputFile)

	fmt.Println("DATA CLEANING")
	fmt.Println(strings.Repeat("-", 60))
	cleaned := cleaner.Clean(ds)
	if cleaned.DuplicatesRemoved > 0 {
		fmt.Printf("Removed %d duplicate records\n", cleaned.DuplicatesRemoved)
	}
	printMissingReport(cleaned.Missing)
	fmt.Println()

	ds = cleaned.Dataset

	typeCounts := analysis.TypeRatio(ds, typeColumn)
	printTypeRatio(typeCounts)

	countryCounts := analysis.CountryCounts(ds, countryColumn)
	ranked := analysis.RankCountries(countryCounts, topN)
	printTopCountries(ranked, len(countryCounts))

	yearCounts := analysis.YearCounts(ds, yearColumn)
	printYearMode(yearCounts)

	fmt.Println("GENERATING VISUALIZATIONS")
	fmt.Println(strings.Repeat("-", 60))
	if err := renderCharts(typeCounts, ranked); err != nil {
		log.Fatalf("Chart generation failed: %v", err)
	}

	banner("ANALYSIS COMPLETE")
	fmt.Println("\nGenerated files:")
	fmt.Printf("  - %s\n", filepath.Join(plotsDir, typeChartFile))
	fmt.Printf("  - %s\n\n", filepath.Join(plotsDir, countryChartFile))
}

func printMissingReport(report []cleaner.ColumnMissing) {
	shown := 0
	for _, col := range report {
		if col.Count == 0 && !verbose {
			continue
		}
		if shown == 0 {
			fmt.Println("Missing values found:")
		}
		fmt.Printf("  - %s: %d (%.1f%%)\n", col.Column, col.Count, col.Percent)
		shown++
	}
	if shown == 0 {
		fmt.Println("No missing values found")
	}
}

func printTypeRatio(counts []analysis.TypeCount) {
	banner("QUESTION 1: What is the ratio of Movies to TV Shows?")
	for _, tc := range counts {
		fmt.Printf("%s: %d (%.1f%%)\n", tc.Type, tc.Count, tc.Percent)
	}
	if ratio, ok := analysis.MovieTVRatio(counts); ok {
		fmt.Printf("\nRatio (Movie:TV Show): 1:%.2f\n", ratio)
	}
	fmt.Println()
}

func printTopCountries(ranked []analysis.CountryCount, distinct int) {
	banner("QUESTION 2: Which country produces the most content?")
	fmt.Printf("Total unique countries: %d\n", distinct)
	fmt.Printf("\nTop %d countries by content production:\n", len(ranked))
	for i, cc := range ranked {
		fmt.Printf("%2d. %-20s %4d titles\n", i+1, cc.Country, cc.Count)
	}
	fmt.Println()
}

func printYearMode(counts map[int]int) {
	banner("QUESTION 3: What is the most common release year?")
	years, count := analysis.Mode(counts)
	switch len(years) {
	case 0:
		fmt.Println("No parseable release years in the dataset")
	case 1:
		fmt.Printf("Most common release year: %d (%d titles)\n", years[0], count)
	default:
		fmt.Printf("Most common release years (tied at %d titles):", count)
		for _, year := range years {
			fmt.Printf(" %d", year)
		}
		fmt.Println()
	}

	top := analysis.TopYears(counts, 10)
	if len(top) > 0 {
		fmt.Printf("\nTop %d release years by content volume:\n", len(top))
		for i, yc := range top {
			fmt.Printf("%2d. %-6d %4d titles\n", i+1, yc.Year, yc.Count)
		}
	}
	fmt.Println()
}

func renderCharts(typeCounts []analysis.TypeCount, ranked []analysis.CountryCount) error {
	if err := os.MkdirAll(plotsDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", plotsDir, err)
	}

	typePath := filepath.Join(plotsDir, typeChartFile)
	if err := charts.SaveTypeChart(typeCounts, typePath); err != nil {
		return err
	}
	fmt.Printf("Saved chart: %s\n", typePath)

	countryPath := filepath.Join(plotsDir, countryChartFile)
	if err := charts.SaveCountryChart(ranked, countryPath); err != nil {
		return err
	}
	fmt.Printf("Saved chart: %s\n", countryPath)
	return nil
}

func banner(title string) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 60))
}
