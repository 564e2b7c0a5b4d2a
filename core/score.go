package core

import (
	"github.com/lawyerconnect/lawmatch/schema"
)

// Tunable scoring constants.
const (
	// Hourly cases are estimated to take between 10 and 40 hours; the
	// lawyer's effective cost range is hourlyRate scaled by these.
	hourlyEstimateMinHours = 10.0
	hourlyEstimateMaxHours = 40.0

	// A half-set fixed-rate range is synthesized from the known bound.
	fixedRateSpreadUp   = 2.0
	fixedRateSpreadDown = 0.5

	// Capacity-used ratio tiers for the availability factor.
	capacityComfortable = 0.5
	capacityBusy        = 0.8

	// Score values shared across factors.
	neutralScore    = 50.0
	noOverlapScore  = 30.0
	noContingency   = 20.0
	similarMatch    = 70.0
	partialSpecCut  = 0.7
	profileBonus    = 80.0
	bonusSuccessBar = 0.85
)

// Match reason thresholds. Each reason is included independently when its
// factor meets the threshold; the order of reasons is fixed.
const (
	reasonExpertiseBar    = 70.0
	reasonSuccessBar      = 80.0
	reasonAvailabilityBar = 80.0
	reasonPricingBar      = 70.0
)

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// computeFactorScores calculates the six normalized sub-scores (0-100) for
// one lawyer-issue pair, using the category index for approximate matching.
func computeFactorScores(lawyer *schema.Lawyer, issue *schema.Issue, idx *CategoryIndex) map[schema.FactorKey]float64 {
	scores := make(map[schema.FactorKey]float64, len(schema.AllFactors))

	lawyerCategories := schema.CategorySet(lawyer.Categories)
	issueCategory := schema.NormalizeCategory(issue.Category)
	_, exactMatch := lawyerCategories[issueCategory]

	// --- 1. Case type fit ---
	switch {
	case exactMatch:
		scores[schema.FactorCaseType] = 100.0
	default:
		scores[schema.FactorCaseType] = 0.0
		// Only the single closest category counts as a similar match.
		if sims := idx.Similar(issueCategory, 1); len(sims) > 0 {
			if _, ok := lawyerCategories[sims[0]]; ok {
				scores[schema.FactorCaseType] = similarMatch
			}
		}
	}

	// --- 2. Specialization ---
	ratingScore := (lawyer.Rating / 5.0) * 100
	if exactMatch {
		scores[schema.FactorSpecialization] = clampScore(ratingScore)
	} else {
		scores[schema.FactorSpecialization] = clampScore(ratingScore * partialSpecCut)
	}

	// --- 3. Success rate ---
	scores[schema.FactorSuccessRate] = clampScore(lawyer.SuccessRate * 100)

	// --- 4. Availability ---
	scores[schema.FactorAvailability] = availabilityScore(lawyer)

	// --- 5. Pricing compatibility ---
	scores[schema.FactorPricing] = pricingScore(lawyer, issue)

	// --- 6. Client profile fit ---
	scores[schema.FactorClientProfile] = neutralScore
	if schema.IsUrgent(issue.Urgency) && lawyer.SuccessRate >= bonusSuccessBar {
		// Discrete tier, not additive: pick the higher of the two levels.
		scores[schema.FactorClientProfile] = profileBonus
	}

	return scores
}

// availabilityScore maps the lawyer's capacity state to a discrete tier.
func availabilityScore(lawyer *schema.Lawyer) float64 {
	if !lawyer.AvailableForNewCase() {
		return 0.0
	}
	if lawyer.MaxCases == 0 {
		return 100.0 // no declared limit
	}
	capacityUsed := float64(lawyer.CurrentCases) / float64(lawyer.MaxCases)
	switch {
	case capacityUsed < capacityComfortable:
		return 100.0
	case capacityUsed < capacityBusy:
		return 80.0
	default:
		return 60.0
	}
}

// pricingScore scores budget compatibility for the issue's preferred
// pricing model. A lawyer with no applicable offering, or an unrecognized
// preference, yields the neutral score.
func pricingScore(lawyer *schema.Lawyer, issue *schema.Issue) float64 {
	switch schema.NormalizeCategory(issue.PreferredPricing) {
	case schema.PricingHourly:
		if lawyer.HourlyRate <= 0 {
			return neutralScore // no hourly offering
		}
		estMin := lawyer.HourlyRate * hourlyEstimateMinHours
		estMax := lawyer.HourlyRate * hourlyEstimateMaxHours
		return rangeOverlapScore(estMin, estMax, issue.BudgetMin, issue.BudgetMax)

	case schema.PricingFixed:
		if lawyer.FixedRateMin <= 0 && lawyer.FixedRateMax <= 0 {
			return neutralScore // no fixed-rate offering
		}
		lawyerMin := lawyer.FixedRateMin
		lawyerMax := lawyer.FixedRateMax
		if lawyerMin <= 0 {
			lawyerMin = lawyerMax * fixedRateSpreadDown
		}
		if lawyerMax <= 0 {
			lawyerMax = lawyerMin * fixedRateSpreadUp
		}
		return rangeOverlapScore(lawyerMin, lawyerMax, issue.BudgetMin, issue.BudgetMax)

	case schema.PricingContingency:
		if lawyer.AcceptsContingency {
			return 100.0
		}
		return noContingency

	default:
		return neutralScore
	}
}

// rangeOverlapScore scores how well the lawyer's cost range overlaps the
// client's budget range: overlap length over union length, scaled to 100.
// A zero-width union (both ranges degenerate points that coincide) scores
// the neutral value rather than dividing by zero. Disjoint ranges score a
// fixed low value.
func rangeOverlapScore(lawyerMin, lawyerMax, budgetMin, budgetMax float64) float64 {
	if lawyerMin > budgetMax || lawyerMax < budgetMin {
		return noOverlapScore
	}
	overlap := min(lawyerMax, budgetMax) - max(lawyerMin, budgetMin)
	totalRange := max(lawyerMax, budgetMax) - min(lawyerMin, budgetMin)
	if totalRange <= 0 {
		return neutralScore
	}
	return clampScore(overlap / totalRange * 100)
}

// combineScore folds the factor scores through a weight profile. Profile
// weights sum to 1, so the combined score stays in [0,100].
func combineScore(factors map[schema.FactorKey]float64, weights schema.WeightProfile) float64 {
	var combined float64
	for factor, weight := range weights {
		combined += factors[factor] * weight
	}
	return combined
}

// matchReasons derives the informational reason strings from the factor
// scores. Order is fixed; each reason is independent.
func matchReasons(factors map[schema.FactorKey]float64) []string {
	var reasons []string
	if factors[schema.FactorCaseType] >= reasonExpertiseBar {
		reasons = append(reasons, "Expertise match")
	}
	if factors[schema.FactorSuccessRate] >= reasonSuccessBar {
		reasons = append(reasons, "High success rate")
	}
	if factors[schema.FactorAvailability] >= reasonAvailabilityBar {
		reasons = append(reasons, "Available now")
	}
	if factors[schema.FactorPricing] >= reasonPricingBar {
		reasons = append(reasons, "Budget compatible")
	}
	return reasons
}
