package core

import (
	"testing"

	"github.com/lawyerconnect/lawmatch/schema"
	"github.com/stretchr/testify/assert"
)

func testLawyer() *schema.Lawyer {
	return &schema.Lawyer{
		ID:           1,
		Name:         "Dana Reyes",
		Categories:   []string{"fraud", "consumer protection"},
		Rating:       4.5,
		SuccessRate:  0.9,
		HourlyRate:   200,
		IsAvailable:  true,
		CurrentCases: 2,
		MaxCases:     10,
		Account:      &schema.Account{ID: 1, IsLawyer: true},
	}
}

func testIssue() *schema.Issue {
	return &schema.Issue{
		Category:  "fraud",
		BudgetMin: 1000,
		BudgetMax: 8000,
	}
}

// TestComputeFactorScoresRange ensures every factor stays in [0, 100].
func TestComputeFactorScoresRange(t *testing.T) {
	idx := BuildCategoryIndex(schema.DefaultCategories)
	scores := computeFactorScores(testLawyer(), testIssue(), idx)

	assert.Len(t, scores, len(schema.AllFactors))
	for _, factor := range schema.AllFactors {
		score, ok := scores[factor]
		assert.True(t, ok, "missing factor %s", factor)
		assert.GreaterOrEqual(t, score, 0.0, "factor %s below range", factor)
		assert.LessOrEqual(t, score, 100.0, "factor %s above range", factor)
	}
}

// TestCaseTypeScore tests the exact, similar and unrelated category tiers.
func TestCaseTypeScore(t *testing.T) {
	idx := BuildCategoryIndex(schema.DefaultCategories)

	tests := []struct {
		name       string
		categories []string
		category   string
		expected   float64
	}{
		{
			name:       "exact match",
			categories: []string{"fraud"},
			category:   "fraud",
			expected:   100.0,
		},
		{
			name:       "exact match case folded",
			categories: []string{"Fraud"},
			category:   "FRAUD",
			expected:   100.0,
		},
		{
			name:       "similar category",
			categories: []string{"tax"},
			category:   "tax law",
			expected:   similarMatch,
		},
		{
			name:       "unrelated category",
			categories: []string{"tax"},
			category:   "fraud",
			expected:   0.0,
		},
		{
			// The catalog's own "tax" entry is the closest match for the
			// query, so the lawyer's "income tax" never gets considered.
			name:       "only the closest similar category counts",
			categories: []string{"income tax"},
			category:   "tax",
			expected:   0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lawyer := testLawyer()
			lawyer.Categories = tt.categories
			issue := testIssue()
			issue.Category = tt.category

			// The index also carries the lawyer's categories, as the
			// orchestrator builds it.
			runIdx := BuildCategoryIndex(idx.Names())
			for _, c := range lawyer.Categories {
				runIdx.Insert(c)
			}

			scores := computeFactorScores(lawyer, issue, runIdx)
			assert.Equal(t, tt.expected, scores[schema.FactorCaseType])
		})
	}
}

// TestSpecializationScore tests the rating scaling and the partial cut for
// non-exact category fits.
func TestSpecializationScore(t *testing.T) {
	idx := BuildCategoryIndex(schema.DefaultCategories)

	lawyer := testLawyer()
	lawyer.Rating = 4.0

	scores := computeFactorScores(lawyer, testIssue(), idx)
	assert.Equal(t, 80.0, scores[schema.FactorSpecialization])

	issue := testIssue()
	issue.Category = "tax"
	scores = computeFactorScores(lawyer, issue, idx)
	assert.InDelta(t, 80.0*partialSpecCut, scores[schema.FactorSpecialization], 0.001)
}

// TestAvailabilityScore tests the discrete capacity tiers.
func TestAvailabilityScore(t *testing.T) {
	tests := []struct {
		name         string
		isAvailable  bool
		currentCases int
		maxCases     int
		expected     float64
	}{
		{name: "unavailable flag", isAvailable: false, currentCases: 0, maxCases: 10, expected: 0.0},
		{name: "at capacity", isAvailable: true, currentCases: 10, maxCases: 10, expected: 0.0},
		{name: "no declared limit", isAvailable: true, currentCases: 50, maxCases: 0, expected: 100.0},
		{name: "comfortable", isAvailable: true, currentCases: 2, maxCases: 10, expected: 100.0},
		{name: "busy", isAvailable: true, currentCases: 7, maxCases: 10, expected: 80.0},
		{name: "nearly full", isAvailable: true, currentCases: 9, maxCases: 10, expected: 60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lawyer := testLawyer()
			lawyer.IsAvailable = tt.isAvailable
			lawyer.CurrentCases = tt.currentCases
			lawyer.MaxCases = tt.maxCases
			assert.Equal(t, tt.expected, availabilityScore(lawyer))
		})
	}
}

// TestPricingScoreContingency tests the binary contingency outcome.
func TestPricingScoreContingency(t *testing.T) {
	issue := testIssue()
	issue.PreferredPricing = schema.PricingContingency

	lawyer := testLawyer()
	lawyer.AcceptsContingency = true
	assert.Equal(t, 100.0, pricingScore(lawyer, issue))

	lawyer.AcceptsContingency = false
	assert.Equal(t, noContingency, pricingScore(lawyer, issue))
}

// TestPricingScoreHourly tests hourly budget overlap handling.
func TestPricingScoreHourly(t *testing.T) {
	issue := testIssue()
	issue.PreferredPricing = schema.PricingHourly
	issue.BudgetMin = 2000
	issue.BudgetMax = 8000

	// 200/hour estimates to 2000..8000, exactly the budget range.
	lawyer := testLawyer()
	lawyer.HourlyRate = 200
	assert.Equal(t, 100.0, pricingScore(lawyer, issue))

	// Far above budget.
	lawyer.HourlyRate = 5000
	assert.Equal(t, noOverlapScore, pricingScore(lawyer, issue))

	// No hourly offering stays neutral.
	lawyer.HourlyRate = 0
	assert.Equal(t, neutralScore, pricingScore(lawyer, issue))
}

// TestPricingScoreFixed tests fixed-rate handling including half-set ranges.
func TestPricingScoreFixed(t *testing.T) {
	issue := testIssue()
	issue.PreferredPricing = schema.PricingFixed
	issue.BudgetMin = 1000
	issue.BudgetMax = 4000

	lawyer := testLawyer()
	lawyer.FixedRateMin = 1000
	lawyer.FixedRateMax = 4000
	assert.Equal(t, 100.0, pricingScore(lawyer, issue))

	// Only the minimum declared: the max is synthesized upward.
	lawyer.FixedRateMin = 2000
	lawyer.FixedRateMax = 0
	assert.Greater(t, pricingScore(lawyer, issue), noOverlapScore)

	// Neither bound declared stays neutral.
	lawyer.FixedRateMin = 0
	lawyer.FixedRateMax = 0
	assert.Equal(t, neutralScore, pricingScore(lawyer, issue))
}

// TestPricingScoreUnrecognizedPreference tests the neutral fallback.
func TestPricingScoreUnrecognizedPreference(t *testing.T) {
	issue := testIssue()
	issue.PreferredPricing = "barter"
	assert.Equal(t, neutralScore, pricingScore(testLawyer(), issue))

	issue.PreferredPricing = ""
	assert.Equal(t, neutralScore, pricingScore(testLawyer(), issue))
}

// TestClientProfileScore tests the discrete urgency bonus tier.
func TestClientProfileScore(t *testing.T) {
	idx := BuildCategoryIndex(schema.DefaultCategories)

	tests := []struct {
		name        string
		urgency     string
		successRate float64
		expected    float64
	}{
		{name: "urgent with proven lawyer", urgency: "urgent", successRate: 0.9, expected: profileBonus},
		{name: "high urgency counts as urgent", urgency: "high", successRate: 0.85, expected: profileBonus},
		{name: "urgent but unproven", urgency: "urgent", successRate: 0.7, expected: neutralScore},
		{name: "not urgent", urgency: "normal", successRate: 0.95, expected: neutralScore},
		{name: "no urgency given", urgency: "", successRate: 0.95, expected: neutralScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lawyer := testLawyer()
			lawyer.SuccessRate = tt.successRate
			issue := testIssue()
			issue.Urgency = tt.urgency

			scores := computeFactorScores(lawyer, issue, idx)
			assert.Equal(t, tt.expected, scores[schema.FactorClientProfile])
		})
	}
}

// TestRangeOverlapScore tests the overlap-over-union formula and its edges.
func TestRangeOverlapScore(t *testing.T) {
	tests := []struct {
		name     string
		lMin     float64
		lMax     float64
		bMin     float64
		bMax     float64
		expected float64
	}{
		{name: "identical ranges", lMin: 100, lMax: 200, bMin: 100, bMax: 200, expected: 100.0},
		{name: "half overlap", lMin: 100, lMax: 200, bMin: 150, bMax: 250, expected: 100.0 / 3},
		{name: "disjoint above", lMin: 300, lMax: 400, bMin: 100, bMax: 200, expected: noOverlapScore},
		{name: "disjoint below", lMin: 0, lMax: 50, bMin: 100, bMax: 200, expected: noOverlapScore},
		{name: "coincident points", lMin: 100, lMax: 100, bMin: 100, bMax: 100, expected: neutralScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, rangeOverlapScore(tt.lMin, tt.lMax, tt.bMin, tt.bMax), 0.001)
		})
	}
}

// TestCombineScore tests the weighted sum against a known profile.
func TestCombineScore(t *testing.T) {
	factors := map[schema.FactorKey]float64{
		schema.FactorCaseType:       100,
		schema.FactorSpecialization: 50,
		schema.FactorSuccessRate:    80,
		schema.FactorAvailability:   100,
		schema.FactorPricing:        60,
		schema.FactorClientProfile:  50,
	}
	weights := schema.GetDefaultWeights(schema.DefaultSegment)

	// 100*0.30 + 50*0.20 + 80*0.15 + 100*0.15 + 60*0.15 + 50*0.05
	assert.InDelta(t, 78.5, combineScore(factors, weights), 0.001)
}

// TestMatchReasons tests the threshold-gated reason strings.
func TestMatchReasons(t *testing.T) {
	factors := map[schema.FactorKey]float64{
		schema.FactorCaseType:     100,
		schema.FactorSuccessRate:  90,
		schema.FactorAvailability: 100,
		schema.FactorPricing:      80,
	}
	assert.Equal(t,
		[]string{"Expertise match", "High success rate", "Available now", "Budget compatible"},
		matchReasons(factors))

	// All below threshold yields no reasons.
	low := map[schema.FactorKey]float64{
		schema.FactorCaseType:     69.9,
		schema.FactorSuccessRate:  79.9,
		schema.FactorAvailability: 79.9,
		schema.FactorPricing:      69.9,
	}
	assert.Empty(t, matchReasons(low))
}
