package core

import (
	"math"

	"github.com/lawyerconnect/lawmatch/schema"
)

// DefaultTopK is the number of matches returned when no limit is given.
const DefaultTopK = 10

// MatchOptions configures one match run. Zero values fall back to the
// built-in catalog, the built-in weight profiles, the dynamic engine and
// DefaultTopK.
type MatchOptions struct {
	TopK     int
	Catalog  []string
	Profiles map[schema.Segment]schema.WeightProfile
	Engine   schema.EngineMode
}

func (o *MatchOptions) applyDefaults() {
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	if o.Catalog == nil {
		o.Catalog = schema.DefaultCategories
	}
	if o.Profiles == nil {
		o.Profiles = schema.GetDefaultWeightProfiles()
	}
	if o.Engine == "" {
		o.Engine = schema.DynamicEngine
	}
}

// Match scores every eligible lawyer against the issue and returns the
// top-K candidates in descending score order. Lawyers without a linked,
// lawyer-flagged account are skipped; candidates with a non-positive
// combined score are never surfaced. Scores are rounded to 2 decimals.
//
// The category index and selector live only for this call; the inputs are
// read but never mutated, so callers serving concurrent requests only need
// to pass a consistent snapshot of lawyers.
func Match(issue *schema.Issue, lawyers []*schema.Lawyer, opts MatchOptions) schema.MatchSummary {
	opts.applyDefaults()

	// Build the category index from the catalog plus every lawyer's
	// declared categories.
	idx := BuildCategoryIndex(opts.Catalog)
	for _, lawyer := range lawyers {
		for _, cat := range lawyer.Categories {
			idx.Insert(cat)
		}
	}

	segment := resolveSegment(issue)
	weights, ok := opts.Profiles[segment]
	if !ok {
		weights = opts.Profiles[schema.DefaultSegment]
	}

	selector := NewTopKSelector()
	totalCandidates := 0
	for _, lawyer := range lawyers {
		if !lawyer.Eligible() {
			continue
		}
		totalCandidates++

		var factors map[schema.FactorKey]float64
		var combined float64
		if opts.Engine == schema.LegacyEngine {
			factors = computeLegacyFactorScores(lawyer, issue)
			combined = combineScore(factors, legacyWeights)
		} else {
			factors = computeFactorScores(lawyer, issue, idx)
			combined = combineScore(factors, weights)
		}

		selector.Upsert(schema.MatchResult{
			Lawyer:  lawyer,
			Score:   combined,
			Factors: factors,
			Reasons: matchReasons(factors),
			Segment: segment,
			Engine:  opts.Engine,
		})
	}

	ranked := selector.TopK(opts.TopK)
	results := make([]schema.MatchResult, 0, len(ranked))
	for _, r := range ranked {
		if r.Score <= 0 {
			continue // zero-scoring matches are never surfaced
		}
		r.Score = roundScore(r.Score)
		results = append(results, r)
	}

	return schema.MatchSummary{
		Segment:         segment,
		Engine:          opts.Engine,
		TotalCandidates: totalCandidates,
		Results:         results,
	}
}

// roundScore rounds a combined score to 2 decimal digits for output.
func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
