package catalog

// QualityScore computes the 0-100 quality score for a tool from its extracted
// completeness signals. The tiers are additive and independently gated:
//
//	README:      10, +5 at 100 lines, +5 at 200, +10 at 400 (max 30)
//	Tests:       10, +5 at 5 functions, +5 at 10, +5 at 15  (max 25)
//	Examples:    15
//	Branding:    10
//	Description: 10
//	Base:        10 for every discovered tool
//
// The base tier establishes a floor of 10; the total is capped at 100.
func QualityScore(hasReadme bool, readmeLines int, hasTests bool, testCount int, hasExamples, hasBranding, hasDescription bool) int {
	score := 0

	if hasReadme {
		score += 10
		if readmeLines >= 100 {
			score += 5
		}
		if readmeLines >= 200 {
			score += 5
		}
		if readmeLines >= 400 {
			score += 10
		}
	}

	if hasTests {
		score += 10
		if testCount >= 5 {
			score += 5
		}
		if testCount >= 10 {
			score += 5
		}
		if testCount >= 15 {
			score += 5
		}
	}

	if hasExamples {
		score += 15
	}
	if hasBranding {
		score += 10
	}
	if hasDescription {
		score += 10
	}

	// Base points for being a valid, discoverable tool.
	score += 10

	if score > 100 {
		score = 100
	}
	return score
}
