package registry

import (
	"sort"
	"strings"

	"github.com/team-brain/toolregistry/internal/domain/catalog"
)

// Get returns a tool by name: exact match first, then a case-insensitive
// fallback. A miss is reported through the bool, never as an error.
func (r *Registry) Get(name string) (*catalog.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if tool, ok := r.tools[name]; ok {
		return tool, true
	}

	lower := strings.ToLower(name)
	for toolName, tool := range r.tools {
		if strings.ToLower(toolName) == lower {
			return tool, true
		}
	}
	return nil, false
}

// List returns a snapshot of every cached tool, sorted by name so output is
// stable between calls.
func (r *Registry) List() []*catalog.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]*catalog.Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sortByName(tools)
	return tools
}

// relevance computes the additive match score of query (already lower-cased)
// against one tool. A zero score means no match at all.
func relevance(tool *catalog.Tool, query string) int {
	if query == "" {
		// An empty query matches nothing, not everything.
		return 0
	}

	score := 0
	name := strings.ToLower(tool.Name)
	if strings.Contains(name, query) {
		score += 100
		if strings.HasPrefix(name, query) {
			score += 50
		}
	}
	if strings.Contains(strings.ToLower(tool.Description), query) {
		score += 30
	}
	for _, cat := range tool.Categories {
		if strings.Contains(strings.ToLower(cat), query) {
			score += 20
			break
		}
	}
	for _, capability := range tool.Capabilities {
		if strings.Contains(strings.ToLower(capability), query) {
			score += 10
			break
		}
	}
	return score
}

// Search returns tools matching the query, best first. Optional filters: a
// category the tool must carry and a minimum quality score. Relevance ties
// break by name so the ordering is fully deterministic.
func (r *Registry) Search(query, category string, minQuality int) []*catalog.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	queryLower := strings.ToLower(query)

	type scored struct {
		tool      *catalog.Tool
		relevance int
	}
	var results []scored

	for _, tool := range r.tools {
		if tool.QualityScore < minQuality {
			continue
		}
		if category != "" && !hasCategory(tool, category) {
			continue
		}
		if score := relevance(tool, queryLower); score > 0 {
			results = append(results, scored{tool, score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].relevance != results[j].relevance {
			return results[i].relevance > results[j].relevance
		}
		return results[i].tool.Name < results[j].tool.Name
	})

	tools := make([]*catalog.Tool, len(results))
	for i, res := range results {
		tools[i] = res.tool
	}
	return tools
}

// ByCategory returns every tool carrying the given category, sorted by name.
func (r *Registry) ByCategory(category string) []*catalog.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tools []*catalog.Tool
	for _, tool := range r.tools {
		if hasCategory(tool, category) {
			tools = append(tools, tool)
		}
	}
	sortByName(tools)
	return tools
}

// CategoryCount pairs a category with the number of tools carrying it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Categories returns every category in use with its tool count, most
// populated first. A tool with several categories counts toward each.
func (r *Registry) Categories() []CategoryCount {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[string]int{}
	for _, tool := range r.tools {
		for _, cat := range tool.Categories {
			counts[cat]++
		}
	}

	result := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		result = append(result, CategoryCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// maxRecommendations caps how many tools Recommend returns.
const maxRecommendations = 5

// Recommend suggests tools for a free-text task: first every tool in each
// category whose keywords appear in the task (category-table order), then any
// remaining ordinary search hits, deduplicated, re-sorted by quality score
// descending and truncated to the top five.
func (r *Registry) Recommend(task string) []*catalog.Tool {
	var results []*catalog.Tool
	seen := map[string]bool{}

	add := func(tool *catalog.Tool) {
		if !seen[tool.Name] {
			seen[tool.Name] = true
			results = append(results, tool)
		}
	}

	for _, category := range catalog.CategoriesForTask(task) {
		for _, tool := range r.ByCategory(category) {
			add(tool)
		}
	}
	for _, tool := range r.Search(task, "", 0) {
		add(tool)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].QualityScore != results[j].QualityScore {
			return results[i].QualityScore > results[j].QualityScore
		}
		return results[i].Name < results[j].Name
	})

	if len(results) > maxRecommendations {
		results = results[:maxRecommendations]
	}
	return results
}

func hasCategory(tool *catalog.Tool, category string) bool {
	for _, cat := range tool.Categories {
		if cat == category {
			return true
		}
	}
	return false
}

func sortByName(tools []*catalog.Tool) {
	sort.Slice(tools, func(i, j int) bool {
		return strings.ToLower(tools[i].Name) < strings.ToLower(tools[j].Name)
	})
}
