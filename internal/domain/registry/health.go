package registry

import (
	"sort"

	"github.com/team-brain/toolregistry/internal/domain/catalog"
)

// Health is the ecosystem health report: coverage and quality aggregates
// across the whole catalog.
type Health struct {
	TotalTools         int             `json:"total_tools"`
	ReadmeCoverage     float64         `json:"documentation_coverage"`
	TestCoverage       float64         `json:"test_coverage"`
	ExamplesCoverage   float64         `json:"examples_coverage"`
	BrandingCoverage   float64         `json:"branding_coverage"`
	AverageQuality     float64         `json:"average_quality_score"`
	AverageReadmeLines float64         `json:"average_readme_lines"`
	AverageTestCount   float64         `json:"average_test_count"`
	HighQuality        int             `json:"high_quality_tools"`
	NeedsWork          int             `json:"needs_improvement"`
	Categories         []CategoryCount `json:"categories"`
	TopQuality         []*catalog.Tool `json:"top_quality"`
	NeedsWorkList      []*catalog.Tool `json:"needs_work_list"`
}

const (
	highQualityFloor   = 80
	needsWorkCeiling   = 50
	healthListMaxTools = 5
)

// Health computes the ecosystem report. An empty catalog yields a zero
// report with TotalTools == 0.
func (r *Registry) Health() Health {
	tools := r.List()
	if len(tools) == 0 {
		return Health{}
	}

	total := len(tools)
	health := Health{TotalTools: total, Categories: r.Categories()}

	var withReadme, withTests, withExamples, withBranding int
	var qualitySum, readmeSum, testSum int
	var needsWork []*catalog.Tool

	for _, tool := range tools {
		if tool.HasReadme {
			withReadme++
		}
		if tool.HasTests {
			withTests++
		}
		if tool.HasExamples {
			withExamples++
		}
		if tool.HasBranding {
			withBranding++
		}
		qualitySum += tool.QualityScore
		readmeSum += tool.ReadmeLines
		testSum += tool.TestCount

		if tool.QualityScore >= highQualityFloor {
			health.HighQuality++
		}
		if tool.QualityScore < needsWorkCeiling {
			needsWork = append(needsWork, tool)
		}
	}

	pct := func(n int) float64 { return float64(n) / float64(total) * 100 }
	health.ReadmeCoverage = pct(withReadme)
	health.TestCoverage = pct(withTests)
	health.ExamplesCoverage = pct(withExamples)
	health.BrandingCoverage = pct(withBranding)
	health.AverageQuality = float64(qualitySum) / float64(total)
	health.AverageReadmeLines = float64(readmeSum) / float64(total)
	health.AverageTestCount = float64(testSum) / float64(total)
	health.NeedsWork = len(needsWork)

	byQuality := append([]*catalog.Tool(nil), tools...)
	sort.SliceStable(byQuality, func(i, j int) bool {
		return byQuality[i].QualityScore > byQuality[j].QualityScore
	})
	health.TopQuality = clipTools(byQuality, healthListMaxTools)

	sort.SliceStable(needsWork, func(i, j int) bool {
		return needsWork[i].QualityScore < needsWork[j].QualityScore
	})
	health.NeedsWorkList = clipTools(needsWork, healthListMaxTools)

	return health
}

func clipTools(tools []*catalog.Tool, n int) []*catalog.Tool {
	if len(tools) > n {
		return tools[:n]
	}
	return tools
}
