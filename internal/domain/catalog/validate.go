package catalog

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult holds the result of validating a catalog entry.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Validate checks a Tool against the catalog invariants: a name, a path-shaped
// location, a non-empty category list, and a quality score inside [0,100].
func Validate(t *Tool) *ValidationResult {
	result := &ValidationResult{Valid: true}

	addError := func(field, message string) {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{Field: field, Message: message})
	}

	if strings.TrimSpace(t.Name) == "" {
		addError("name", "name is required")
	}
	if strings.TrimSpace(t.Path) == "" {
		addError("path", "path is required")
	}
	if len(t.Categories) == 0 {
		addError("categories", "at least one category is required")
	}
	for i, cat := range t.Categories {
		if strings.TrimSpace(cat) == "" {
			addError("categories", fmt.Sprintf("category %d is empty", i))
		}
	}
	if t.QualityScore < 0 || t.QualityScore > 100 {
		addError("quality_score", fmt.Sprintf("score %d outside [0,100]", t.QualityScore))
	}
	if t.ReadmeLines < 0 {
		addError("readme_lines", "negative line count")
	}
	if t.TestCount < 0 {
		addError("test_count", "negative test count")
	}

	return result
}
