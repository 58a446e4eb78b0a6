package registry

import (
	"sort"
)

// ToolUseCount pairs a tool name with how often it was used.
type ToolUseCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// UsageStats summarizes the usage-event log.
type UsageStats struct {
	TotalUses   int            `json:"total_uses"`
	Successful  int            `json:"successful"`
	SuccessRate float64        `json:"success_rate"`
	TopTools    []ToolUseCount `json:"top_tools"`
}

// topToolsLimit caps the most-used list in usage stats.
const topToolsLimit = 10

// UsageStats aggregates the usage log, optionally restricted to one tool
// name for the totals. The top-tools list always covers the whole log.
func (r *Registry) UsageStats(toolName string) (UsageStats, error) {
	events, err := r.store.LoadUsage()
	if err != nil {
		return UsageStats{}, err
	}

	stats := UsageStats{}
	counts := map[string]int{}

	for _, event := range events {
		counts[event.ToolName]++
		if toolName != "" && event.ToolName != toolName {
			continue
		}
		stats.TotalUses++
		if event.Success {
			stats.Successful++
		}
	}

	if stats.TotalUses > 0 {
		stats.SuccessRate = float64(stats.Successful) / float64(stats.TotalUses) * 100
	}

	for name, count := range counts {
		stats.TopTools = append(stats.TopTools, ToolUseCount{Name: name, Count: count})
	}
	sort.Slice(stats.TopTools, func(i, j int) bool {
		if stats.TopTools[i].Count != stats.TopTools[j].Count {
			return stats.TopTools[i].Count > stats.TopTools[j].Count
		}
		return stats.TopTools[i].Name < stats.TopTools[j].Name
	})
	if len(stats.TopTools) > topToolsLimit {
		stats.TopTools = stats.TopTools[:topToolsLimit]
	}

	return stats, nil
}
