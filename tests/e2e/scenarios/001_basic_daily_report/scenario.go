package main

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries  = 64000 // Total number of log lines to generate
	suspectEvery  = 50    // Every Nth line carries an endpoint without a leading "/"
	logPrefix     = "nginx-access-ui.log"
	latestLogDate = "20251228"
	olderLogDate  = "20251227"
)

var (
	paths      = []string{"/", "/api/v2/banner/25019354", "/api/1/photogenic_banners/list/?server_name=WIN7RB4", "/export/appinstall_raw/2017-06-29/"}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

type entry struct {
	index   int
	path    string
	ua      string
	latency float64
}

type expectedStats struct {
	count   int
	timeSum float64
	timeMax float64
}

// main runs the e2e scenario: 001_basic_daily_report
//
// This scenario prepares a log directory for the analyzer and prints the
// report it is expected to produce. It writes 64,000 lines in the nginx ui
// format to a gzip log for the latest date, plus an older plain log that must
// be ignored.
//
// What it tests:
//   - Latest log selection across plain and gzip files
//   - Transparent gzip decompression
//   - Per-URL aggregation, including suspect endpoints below the error limit
//   - Idempotence: a second analyzer run must report outcome=skipped
//
// Expected results:
//   - report-2025.12.28.html is written to the report directory
//   - Error rate is 0.02 (every 50th line is suspect), so the run completes
//   - Each URL row matches the count, time_sum and time_max printed below
//
// Run the analyzer afterwards with:
//
//	LOG_ANALYZER_LOG_DIR=.tmp/e2e/log LOG_ANALYZER_REPORT_DIR=.tmp/e2e/reports go run ./cmd/analyzer --config ./configs/configs.yml
func main() {
	// these configs can be changed to run the scenario
	workDir := ".tmp/e2e"    // Scenario directory relative to project root
	wantCleanWorkDir := true // If true, clean up the scenario directory before running

	// Get project root directory by looking for go.mod file
	// Start from current working directory and walk up until we find go.mod
	projectRoot, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}

	// Walk up the directory tree to find go.mod
	for i := 0; i < 10; i++ {
		goModPath := filepath.Join(projectRoot, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			// Reached filesystem root without finding go.mod
			fmt.Fprintf(os.Stderr, "ERROR: Could not find go.mod file. Please run from project root\n")
			os.Exit(1)
		}
		projectRoot = parent
	}

	workPath := filepath.Join(projectRoot, workDir)
	logPath := filepath.Join(workPath, "log")

	// Clean up scenario directory if requested
	if wantCleanWorkDir {
		fmt.Printf("Cleaning scenario directory: %s\n", workPath)
		if err := os.RemoveAll(workPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean scenario directory: %v\n", err)
		}
		fmt.Println()
	}
	if err := os.MkdirAll(logPath, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting e2e scenario: 001_basic_daily_report")
	fmt.Printf("LOG_PATH: %s\n", logPath)
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Println()

	entries := generateAllEntries()

	latestName := fmt.Sprintf("%s-%s.gz", logPrefix, latestLogDate)
	if err := writeGzipLog(filepath.Join(logPath, latestName), entries); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write %s: %v\n", latestName, err)
		os.Exit(1)
	}
	olderName := fmt.Sprintf("%s-%s", logPrefix, olderLogDate)
	olderLine := formatLine(entry{index: 0, path: "/must/not/appear", ua: userAgents[3], latency: 99.999}) + "\n"
	if err := os.WriteFile(filepath.Join(logPath, olderName), []byte(olderLine), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write %s: %v\n", olderName, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s and %s\n", latestName, olderName)
	fmt.Println()

	printExpected(entries)
	fmt.Println("Scenario prepared successfully")
}

func generateAllEntries() []entry {
	entries := make([]entry, 0, totalEntries)
	for i := 0; i < totalEntries; i++ {
		path := paths[(i/4)%len(paths)]
		if i%suspectEvery == suspectEvery-1 {
			path = strings.TrimPrefix(path, "/") + "suspect"
		}
		entries = append(entries, entry{
			index:   i,
			path:    path,
			ua:      userAgents[i%len(userAgents)],
			latency: float64((i*17)%1000+1) / 1000,
		})
	}
	return entries
}

// formatLine renders one line in the nginx ui log format.
func formatLine(e entry) string {
	second := e.index % 60
	return fmt.Sprintf(`1.196.116.32 -  - [28/Dec/2025:03:50:%02d +0300] "GET %s HTTP/1.1" 200 927 "-" "%s" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" %.3f`,
		second, e.path, e.ua, e.latency)
}

func writeGzipLog(path string, entries []entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	for _, e := range entries {
		if _, err := fmt.Fprintln(gw, formatLine(e)); err != nil {
			return err
		}
	}
	return gw.Close()
}

func printExpected(entries []entry) {
	byPath := make(map[string]*expectedStats)
	for _, e := range entries {
		stats, exists := byPath[e.path]
		if !exists {
			stats = &expectedStats{}
			byPath[e.path] = stats
		}
		stats.count++
		stats.timeSum += e.latency
		if e.latency > stats.timeMax {
			stats.timeMax = e.latency
		}
	}

	keys := make([]string, 0, len(byPath))
	for k := range byPath {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if byPath[keys[i]].timeSum != byPath[keys[j]].timeSum {
			return byPath[keys[i]].timeSum > byPath[keys[j]].timeSum
		}
		return keys[i] < keys[j]
	})

	fmt.Println("=== Expected report rows ===")
	for _, k := range keys {
		s := byPath[k]
		fmt.Printf("url=%s count=%d time_sum=%.3f time_max=%.3f\n", k, s.count, s.timeSum, s.timeMax)
	}
	fmt.Printf("Expected error rate: %.3f\n", 1/float64(suspectEvery))
	fmt.Println()
}
