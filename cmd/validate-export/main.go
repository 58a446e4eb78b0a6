// Command validate-export checks a JSON catalog export for structural
// problems before it is shared or committed.
//
// Usage:
//
//	validate-export [options] <export.json>...
//
// Options:
//
//	-json       Output results as JSON
//	-quiet      Only output errors
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/team-brain/toolregistry/internal/domain/catalog"
)

var (
	asJSON = false
	quiet  = false
)

func main() {
	fs := flag.NewFlagSet("validate-export", flag.ExitOnError)
	fs.BoolVar(&asJSON, "json", false, "Output results as JSON")
	fs.BoolVar(&quiet, "quiet", false, "Only output errors")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(fs.Args(), asJSON, quiet))
}

func run(paths []string, asJSON, quiet bool) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no export files given")
		return 1
	}

	exitCode := 0
	allResults := make(map[string]*fileResult)

	for _, path := range paths {
		result := validateFile(path)
		allResults[path] = result
		if !result.Valid {
			exitCode = 1
		}
	}

	if asJSON {
		outputJSON(allResults)
	} else {
		outputText(allResults, quiet)
	}
	return exitCode
}

// fileResult aggregates per-tool validation for one export file.
type fileResult struct {
	Valid bool                                 `json:"valid"`
	Tools int                                  `json:"tools"`
	Error string                               `json:"error,omitempty"`
	Bad   map[string]*catalog.ValidationResult `json:"invalid_tools,omitempty"`
}

func validateFile(path string) *fileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return &fileResult{Error: err.Error()}
	}

	var tools []*catalog.Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return &fileResult{Error: fmt.Sprintf("not a catalog export: %v", err)}
	}

	result := &fileResult{Valid: true, Tools: len(tools)}
	seen := make(map[string]bool, len(tools))

	for _, tool := range tools {
		v := catalog.Validate(tool)
		if seen[tool.Name] {
			v.Valid = false
			v.Errors = append(v.Errors, catalog.ValidationError{
				Field:   "name",
				Message: "duplicate tool name",
			})
		}
		seen[tool.Name] = true

		if !v.Valid {
			if result.Bad == nil {
				result.Bad = make(map[string]*catalog.ValidationResult)
			}
			result.Valid = false
			result.Bad[tool.Name] = v
		}
	}
	return result
}

func outputJSON(results map[string]*fileResult) {
	output := struct {
		Results map[string]*fileResult `json:"results"`
		Summary struct {
			Total   int `json:"total"`
			Valid   int `json:"valid"`
			Invalid int `json:"invalid"`
		} `json:"summary"`
	}{
		Results: results,
	}

	for _, r := range results {
		output.Summary.Total++
		if r.Valid {
			output.Summary.Valid++
		} else {
			output.Summary.Invalid++
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

func outputText(results map[string]*fileResult, quiet bool) {
	validCount := 0
	invalidCount := 0

	for path, result := range results {
		if result.Error != "" {
			invalidCount++
			fmt.Printf("✗ %s\n", path)
			fmt.Printf("  ERROR: %s\n", result.Error)
			continue
		}

		if result.Valid {
			validCount++
			if !quiet {
				fmt.Printf("✓ %s (%d tools)\n", path, result.Tools)
			}
			continue
		}

		invalidCount++
		fmt.Printf("✗ %s (%d tools)\n", path, result.Tools)
		for name, v := range result.Bad {
			for _, err := range v.Errors {
				fmt.Printf("  ERROR: %s: %s: %s\n", name, err.Field, err.Message)
			}
		}
	}

	if !quiet {
		fmt.Println()
		fmt.Printf("Summary: %d valid, %d invalid\n", validCount, invalidCount)
	}
}
