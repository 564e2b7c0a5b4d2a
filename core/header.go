package core

import (
	"fmt"

	"github.com/lawyerconnect/lawmatch/internal/contract"
)

// LogMatchHeader prints a concise, 2-line header for each match run.
func LogMatchHeader(cfg *contract.Config) {
	category := cfg.Issue.Category
	if category == "" {
		category = "any"
	}

	// Line 1: The issue summary (Category and Engine)
	fmt.Printf("🔎 Category: %s (Engine: %s)\n", category, cfg.Engine)

	// Line 2: The budget and urgency being matched
	fmt.Printf("💰 Budget: %.0f → %.0f (urgency: %s, pricing: %s)\n",
		cfg.Issue.BudgetMin, cfg.Issue.BudgetMax, orDefault(cfg.Issue.Urgency), orDefault(cfg.Issue.PreferredPricing))
}

func orDefault(s string) string {
	if s == "" {
		return "unspecified"
	}
	return s
}
