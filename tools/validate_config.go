//go:build ignore

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sm64pc/sm64config/internal/config"
	"github.com/sm64pc/sm64config/internal/configfile"
)

// Statistics tracks parsing results across files
type Statistics struct {
	TotalFiles   int
	CleanFiles   int
	FailedFiles  int
	TotalApplied int
	IssueKinds   map[configfile.IssueKind]int
	OptionCounts map[string]int
	FileIssues   []FileIssue
}

// FileIssue stores one skipped line
type FileIssue struct {
	File  string
	Issue configfile.Issue
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: validate_config <directory-or-file>")
		fmt.Println("Example: validate_config ~/.local/share/sm64pc/")
		fmt.Println("         validate_config sm64config.txt")
		os.Exit(1)
	}

	path := os.Args[1]

	stats := Statistics{
		IssueKinds:   make(map[configfile.IssueKind]int),
		OptionCounts: make(map[string]int),
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("Error accessing path: %v\n", err)
		os.Exit(1)
	}

	var files []string
	if info.IsDir() {
		files, err = filepath.Glob(filepath.Join(path, "*.txt"))
		if err != nil {
			fmt.Printf("Error finding config files: %v\n", err)
			os.Exit(1)
		}
		if len(files) == 0 {
			fmt.Printf("No .txt files found in %s\n", path)
			os.Exit(1)
		}
	} else {
		files = []string{path}
	}

	fmt.Printf("=== sm64config Validator ===\n")
	fmt.Printf("Files to process: %d\n\n", len(files))

	for _, file := range files {
		processFile(file, &stats)
	}

	printStatistics(&stats)
}

func processFile(filename string, stats *Statistics) {
	stats.TotalFiles++

	// The file's own directory is the preferred dir, so Load reads it in place.
	paths := configfile.Paths{PreferredDir: filepath.Dir(filename)}
	store := config.NewStore(config.Defaults(), paths, filepath.Base(filename), nil)

	report, err := store.Load()
	if err != nil {
		stats.FailedFiles++
		fmt.Printf("Error loading %s: %v\n", filename, err)
		return
	}

	stats.TotalApplied += len(report.Applied)
	for _, name := range report.Applied {
		stats.OptionCounts[name]++
	}
	for _, issue := range report.Issues {
		stats.IssueKinds[issue.Kind]++
		stats.FileIssues = append(stats.FileIssues, FileIssue{File: filename, Issue: issue})
	}
	if len(report.Issues) == 0 {
		stats.CleanFiles++
	}
}

func printStatistics(stats *Statistics) {
	fmt.Printf("=== Results ===\n")
	fmt.Printf("Files processed: %d\n", stats.TotalFiles)
	fmt.Printf("Clean files:     %d\n", stats.CleanFiles)
	fmt.Printf("Failed files:    %d\n", stats.FailedFiles)
	fmt.Printf("Options applied: %d\n\n", stats.TotalApplied)

	if len(stats.OptionCounts) > 0 {
		fmt.Printf("=== Options Seen ===\n")
		names := make([]string, 0, len(stats.OptionCounts))
		for name := range stats.OptionCounts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-16s %d\n", name, stats.OptionCounts[name])
		}
		fmt.Println()
	}

	if len(stats.FileIssues) == 0 {
		fmt.Println("No skipped lines.")
		return
	}

	fmt.Printf("=== Skipped Lines by Kind ===\n")
	for _, kind := range []configfile.IssueKind{
		configfile.IssueExpectedValue,
		configfile.IssueUnknownOption,
		configfile.IssueInvalidValue,
	} {
		if n := stats.IssueKinds[kind]; n > 0 {
			fmt.Printf("  %-16s %d\n", kind, n)
		}
	}

	fmt.Printf("\n=== Skipped Lines ===\n")
	for _, fi := range stats.FileIssues {
		fmt.Printf("  %s: %s\n", fi.File, fi.Issue)
	}

	if stats.FailedFiles > 0 {
		os.Exit(1)
	}
}
