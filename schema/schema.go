// Package schema has configs, models and global variables for all parts of lawmatch.
package schema

// Account represents the user account linked to a lawyer profile.
// A lawyer profile without a linked, lawyer-flagged account is not
// eligible for matching.
type Account struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsLawyer bool   `json:"is_lawyer"`
}

// Lawyer represents a service-provider record with expertise, pricing and
// capacity attributes. The matching core reads these fields and never
// mutates them.
type Lawyer struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Categories         []string `json:"categories"`           // Declared expertise category names
	Rating             float64  `json:"rating"`               // Client rating on a 0-5 scale
	SuccessRate        float64  `json:"success_rate"`         // Fraction of cases won (0-1)
	HourlyRate         float64  `json:"hourly_rate"`          // Hourly rate; 0 means no hourly offering
	FixedRateMin       float64  `json:"fixed_rate_min"`       // Lower bound of fixed-rate offering; 0 means unset
	FixedRateMax       float64  `json:"fixed_rate_max"`       // Upper bound of fixed-rate offering; 0 means unset
	AcceptsContingency bool     `json:"accepts_contingency"`  // Whether contingency-fee cases are accepted
	IsAvailable        bool     `json:"is_available"`         // Explicit availability flag
	CurrentCases       int      `json:"current_cases"`        // Cases currently being handled
	MaxCases           int      `json:"max_cases"`            // Declared capacity; 0 means unlimited
	Account            *Account `json:"account,omitempty"`    // Linked user account, may be nil
}

// Eligible reports whether the lawyer may be considered for matching at all.
// A profile with no linked account, or an account that is not flagged as a
// lawyer, is silently skipped by the orchestrator.
func (l *Lawyer) Eligible() bool {
	return l.Account != nil && l.Account.IsLawyer
}

// AvailableForNewCase reports whether the lawyer can take on another case.
func (l *Lawyer) AvailableForNewCase() bool {
	if !l.IsAvailable {
		return false
	}
	if l.MaxCases == 0 {
		return true // unlimited capacity
	}
	return l.CurrentCases < l.MaxCases
}

// Issue represents a client's legal matter submission requesting matching
// to a provider. The category is expected to be validated against the
// catalog by the caller before matching.
type Issue struct {
	ID               int64   `json:"id"`
	Category         string  `json:"category"`
	BudgetMin        float64 `json:"budget_min"`
	BudgetMax        float64 `json:"budget_max"`
	Urgency          string  `json:"urgency"`           // normal, high or urgent
	PreferredPricing string  `json:"preferred_pricing"` // hourly, fixed or contingency
}

// MatchResult is one ranked entry of a match run: a lawyer, their combined
// weighted score rounded to 2 decimals, the per-factor sub-scores and the
// human-readable match reasons.
type MatchResult struct {
	Lawyer  *Lawyer               `json:"lawyer"`
	Score   float64               `json:"score"`
	Factors map[FactorKey]float64 `json:"factors"`
	Reasons []string              `json:"reasons"`
	Segment Segment               `json:"segment"`
	Engine  EngineMode            `json:"engine"`
}

// MatchSummary carries run-level metadata alongside the ranked results.
type MatchSummary struct {
	RequestID       string        `json:"request_id"`
	Segment         Segment       `json:"segment"`
	Engine          EngineMode    `json:"engine"`
	TotalCandidates int           `json:"total_candidates"` // Eligible lawyers scored
	Results         []MatchResult `json:"results"`
}
