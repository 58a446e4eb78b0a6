package catalog

import "strings"

// FallbackCategory is assigned when no keyword matches a tool.
const FallbackCategory = "utility"

// CategoryKeywords maps each category to the keywords that place a tool in it.
// A keyword matches as a plain substring of the lower-cased name+description.
type CategoryKeywords struct {
	Name     string
	Keywords []string
}

// CategoryTable lists all known categories in detection order. Category
// detection and task recommendation both walk this table front to back, so
// the order here is part of the contract.
var CategoryTable = []CategoryKeywords{
	{"synapse", []string{"synapse", "message", "communication", "inbox", "notification"}},
	{"monitoring", []string{"health", "watch", "monitor", "tracker", "stats", "analytics"}},
	{"task", []string{"task", "queue", "todo", "flow", "schedule", "assign"}},
	{"memory", []string{"memory", "bridge", "context", "compress", "cache"}},
	{"config", []string{"config", "setting", "env", "environment"}},
	{"session", []string{"session", "replay", "record", "collab"}},
	{"security", []string{"secure", "vault", "encrypt", "password", "auth"}},
	{"file", []string{"file", "backup", "rename", "deduplicate", "clip"}},
	{"network", []string{"net", "port", "scan", "ssh", "rest", "api"}},
	{"dev", []string{"git", "regex", "log", "data", "convert", "json"}},
	{"productivity", []string{"time", "focus", "notes", "window", "screen"}},
	{"routing", []string{"router", "route", "dispatch", "assign"}},
}

// DetectCategories classifies a tool by its name and description. A tool can
// carry several categories; a tool matching none gets exactly ["utility"].
func DetectCategories(name, description string) []string {
	text := strings.ToLower(name + " " + description)

	var categories []string
	for _, entry := range CategoryTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(text, keyword) {
				categories = append(categories, entry.Name)
				break
			}
		}
	}

	if len(categories) == 0 {
		categories = []string{FallbackCategory}
	}
	return categories
}

// CategoriesForTask returns the categories whose keyword table matches the
// free-text task description, in table order. Used by recommendations.
func CategoriesForTask(task string) []string {
	text := strings.ToLower(task)

	var categories []string
	for _, entry := range CategoryTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(text, keyword) {
				categories = append(categories, entry.Name)
				break
			}
		}
	}
	return categories
}
