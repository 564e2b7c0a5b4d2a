package core

import (
	"math"
	"strings"

	"github.com/lawyerconnect/lawmatch/schema"
)

// Legacy engine weights. The legacy scorer predates segment-selected
// profiles and always combines factors with these fixed weights.
var legacyWeights = schema.WeightProfile{
	schema.FactorCaseType:       0.30,
	schema.FactorSpecialization: 0.20,
	schema.FactorSuccessRate:    0.15,
	schema.FactorAvailability:   0.15,
	schema.FactorPricing:        0.15,
	schema.FactorClientProfile:  0.05,
}

// Legacy scoring tiers.
const (
	legacyRelatedMatch   = 40.0
	legacyGradedBonusBar = 0.75
	legacyGradedBonus    = 15.0
	legacyUrgentBonus    = 30.0
)

// computeLegacyFactorScores calculates the six sub-scores the way the
// legacy engine does: substring category matching plus the hand-curated
// related-category map instead of the trie, a distance-graded hourly
// pricing fallback, and an additive client-profile bonus.
func computeLegacyFactorScores(lawyer *schema.Lawyer, issue *schema.Issue) map[schema.FactorKey]float64 {
	scores := make(map[schema.FactorKey]float64, len(schema.AllFactors))

	lawyerCategories := schema.NormalizeCategories(lawyer.Categories)
	issueCategory := schema.NormalizeCategory(issue.Category)
	exactMatch := false
	for _, cat := range lawyerCategories {
		if cat == issueCategory {
			exactMatch = true
			break
		}
	}

	scores[schema.FactorCaseType] = legacyCaseTypeScore(lawyerCategories, issueCategory, exactMatch)

	ratingScore := (lawyer.Rating / 5.0) * 100
	if exactMatch {
		scores[schema.FactorSpecialization] = clampScore(ratingScore)
	} else {
		scores[schema.FactorSpecialization] = clampScore(ratingScore * partialSpecCut)
	}

	scores[schema.FactorSuccessRate] = clampScore(lawyer.SuccessRate * 100)
	scores[schema.FactorAvailability] = availabilityScore(lawyer)
	scores[schema.FactorPricing] = legacyPricingScore(lawyer, issue)
	scores[schema.FactorClientProfile] = legacyClientProfileScore(lawyer, issue)

	return scores
}

func legacyCaseTypeScore(lawyerCategories []string, issueCategory string, exactMatch bool) float64 {
	if exactMatch {
		return 100.0
	}
	for _, cat := range lawyerCategories {
		if strings.Contains(cat, issueCategory) || strings.Contains(issueCategory, cat) {
			return similarMatch
		}
	}
	for _, related := range schema.RelatedCategories[issueCategory] {
		for _, cat := range lawyerCategories {
			if cat == related {
				return legacyRelatedMatch
			}
		}
	}
	return 0.0
}

// legacyPricingScore keeps the legacy quirks: disjoint hourly ranges score
// by budget distance rather than a flat value, and any zero result is
// bumped to neutral (which also covers missing offerings and unrecognized
// preferences).
func legacyPricingScore(lawyer *schema.Lawyer, issue *schema.Issue) float64 {
	var score float64

	switch schema.NormalizeCategory(issue.PreferredPricing) {
	case schema.PricingHourly:
		if lawyer.HourlyRate > 0 {
			estMin := lawyer.HourlyRate * hourlyEstimateMinHours
			estMax := lawyer.HourlyRate * hourlyEstimateMaxHours
			if estMin <= issue.BudgetMax && estMax >= issue.BudgetMin {
				score = rangeOverlapScore(estMin, estMax, issue.BudgetMin, issue.BudgetMax)
			} else if estMin > issue.BudgetMax {
				// Lawyer is too expensive: fade out with distance above budget.
				if issue.BudgetMax > 0 {
					diff := estMin - issue.BudgetMax
					score = math.Max(0, 50-(diff/issue.BudgetMax)*50)
				}
			} else {
				// Lawyer is below budget: fade out with distance below.
				if issue.BudgetMin > 0 {
					diff := issue.BudgetMin - estMax
					score = math.Max(0, 50-(diff/issue.BudgetMin)*50)
				}
			}
		}

	case schema.PricingFixed:
		if lawyer.FixedRateMin > 0 || lawyer.FixedRateMax > 0 {
			lawyerMin := lawyer.FixedRateMin
			lawyerMax := lawyer.FixedRateMax
			if lawyerMin <= 0 {
				lawyerMin = lawyerMax * fixedRateSpreadDown
			}
			if lawyerMax <= 0 {
				lawyerMax = lawyerMin * fixedRateSpreadUp
			}
			score = rangeOverlapScore(lawyerMin, lawyerMax, issue.BudgetMin, issue.BudgetMax)
		}

	case schema.PricingContingency:
		if lawyer.AcceptsContingency {
			score = 100.0
		} else {
			score = noContingency
		}
	}

	if score == 0.0 {
		score = neutralScore
	}
	return math.Min(score, 100.0)
}

// legacyClientProfileScore grades the urgency bonus in two steps instead of
// the dynamic engine's single discrete tier.
func legacyClientProfileScore(lawyer *schema.Lawyer, issue *schema.Issue) float64 {
	score := neutralScore
	if schema.IsUrgent(issue.Urgency) {
		switch {
		case lawyer.SuccessRate >= bonusSuccessBar:
			score += legacyUrgentBonus
		case lawyer.SuccessRate >= legacyGradedBonusBar:
			score += legacyGradedBonus
		}
	}
	return math.Min(score, 100.0)
}
