package schema

// WeightProfile maps each factor to its weight. Weights across the six
// factors of a profile sum to 1.0, so a combined score stays in [0,100].
type WeightProfile map[FactorKey]float64

// DefaultCategories is the fixed catalog of issue categories. The catalog
// can be overridden from the config file for testing; the matching core
// treats whatever catalog it is given as immutable shared state.
var DefaultCategories = []string{
	"harassment",
	"workplace discrimination",
	"domestic violence",
	"family disputes",
	"property issues",
	"fraud",
	"tax",
	"criminal defense",
	"civil litigation",
	"corporate law",
	"employment",
	"immigration",
}

// defaultWeightProfiles holds the four built-in weight profiles, one per
// client segment.
var defaultWeightProfiles = map[Segment]WeightProfile{
	BudgetConsciousSegment: {
		FactorCaseType:       0.25,
		FactorSpecialization: 0.15,
		FactorSuccessRate:    0.10,
		FactorAvailability:   0.20,
		FactorPricing:        0.25, // Higher weight for budget-conscious
		FactorClientProfile:  0.05,
	},
	QualityFocusedSegment: {
		FactorCaseType:       0.30,
		FactorSpecialization: 0.25,
		FactorSuccessRate:    0.25, // Higher weight for quality
		FactorAvailability:   0.10,
		FactorPricing:        0.05,
		FactorClientProfile:  0.05,
	},
	UrgentSegment: {
		FactorCaseType:       0.25,
		FactorSpecialization: 0.20,
		FactorSuccessRate:    0.15,
		FactorAvailability:   0.30, // Higher weight for urgent
		FactorPricing:        0.05,
		FactorClientProfile:  0.05,
	},
	DefaultSegment: {
		FactorCaseType:       0.30,
		FactorSpecialization: 0.20,
		FactorSuccessRate:    0.15,
		FactorAvailability:   0.15,
		FactorPricing:        0.15,
		FactorClientProfile:  0.05,
	},
}

// GetDefaultWeights returns a copy of the built-in weight profile for a
// segment. Unknown segments fall back to the default profile.
func GetDefaultWeights(segment Segment) WeightProfile {
	profile, ok := defaultWeightProfiles[segment]
	if !ok {
		profile = defaultWeightProfiles[DefaultSegment]
	}
	out := make(WeightProfile, len(profile))
	for k, v := range profile {
		out[k] = v
	}
	return out
}

// GetDefaultWeightProfiles returns a copy of all built-in weight profiles.
func GetDefaultWeightProfiles() map[Segment]WeightProfile {
	out := make(map[Segment]WeightProfile, len(defaultWeightProfiles))
	for seg := range defaultWeightProfiles {
		out[seg] = GetDefaultWeights(seg)
	}
	return out
}

// RelatedCategories is the hand-curated taxonomy used by the legacy engine
// for its 40-point related-category tier. The dynamic engine supersedes it
// with trie-based approximate matching.
var RelatedCategories = map[string][]string{
	"harassment":               {"workplace discrimination", "domestic violence"},
	"workplace discrimination": {"harassment"},
	"domestic violence":        {"family disputes", "harassment"},
	"family disputes":          {"domestic violence"},
	"property issues":          {"fraud"},
	"fraud":                    {"property issues"},
}
