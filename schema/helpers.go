package schema

import "strings"

// NormalizeCategory trims surrounding whitespace and case-folds a category
// name. All category comparisons in the matching core go through this.
func NormalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeCategories applies NormalizeCategory to every entry, dropping
// empties. The result preserves input order.
func NormalizeCategories(names []string) []string {
	var out []string
	for _, n := range names {
		cleaned := NormalizeCategory(n)
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// ParseCategories splits a comma-separated category string into normalized
// names. Roster stores persist a lawyer's categories as a single CSV column.
func ParseCategories(raw string) []string {
	return NormalizeCategories(strings.Split(raw, ","))
}

// JoinCategories is the inverse of ParseCategories.
func JoinCategories(categories []string) string {
	return strings.Join(categories, ",")
}

// CategorySet builds a membership set of normalized category names.
func CategorySet(categories []string) map[string]struct{} {
	set := make(map[string]struct{}, len(categories))
	for _, c := range NormalizeCategories(categories) {
		set[c] = struct{}{}
	}
	return set
}

// IsUrgent reports whether an urgency string triggers the urgent segment
// and the client-profile bonus.
func IsUrgent(urgency string) bool {
	switch strings.ToLower(strings.TrimSpace(urgency)) {
	case UrgencyHigh, UrgencyUrgent:
		return true
	default:
		return false
	}
}
