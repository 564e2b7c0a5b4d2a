package core

import "github.com/lawyerconnect/lawmatch/schema"

// Budget thresholds separating client segments. The average of the budget
// bounds is compared against these when urgency does not already force the
// urgent segment.
const (
	budgetConsciousCeiling = 3000.0
	qualityFocusedFloor    = 10000.0
)

// resolveSegment determines the client segment for an issue, which in turn
// selects the active weight profile. Urgency wins over budget.
func resolveSegment(issue *schema.Issue) schema.Segment {
	if schema.IsUrgent(issue.Urgency) {
		return schema.UrgentSegment
	}

	budgetAvg := (issue.BudgetMin + issue.BudgetMax) / 2
	switch {
	case budgetAvg < budgetConsciousCeiling:
		return schema.BudgetConsciousSegment
	case budgetAvg > qualityFocusedFloor:
		return schema.QualityFocusedSegment
	default:
		return schema.DefaultSegment
	}
}
