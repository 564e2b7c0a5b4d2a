// Package core has core logic for indexing, scoring and ranking.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/internal/dbstore"
	"github.com/lawyerconnect/lawmatch/internal/outwriter"
	"github.com/lawyerconnect/lawmatch/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// ExecuteMatch runs the matching pipeline and prints results to stdout.
// It serves as the main entry point for the 'match' command.
func ExecuteMatch(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()

	summary, err := RunMatch(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteMatches(summary, cfg, duration)
}

// RunMatch loads the roster, scores it and records the run in history. This
// is the shared path between the CLI and the MCP server.
func RunMatch(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.MatchSummary, error) {
	start := time.Now()

	if !shouldSuppressHeader(ctx) {
		LogMatchHeader(cfg)
	}

	roster := mgr.GetRosterStore()
	if roster == nil {
		return schema.MatchSummary{}, errors.New("no roster configured. Provide --roster or a roster backend")
	}
	lawyers, err := roster.LoadLawyers(ctx)
	if err != nil {
		return schema.MatchSummary{}, err
	}

	summary := GetMatchResults(cfg, lawyers)

	recordMatchRun(start, cfg, mgr, summary)
	return summary, nil
}

// GetMatchResults runs the match against an already loaded roster.
func GetMatchResults(cfg *contract.Config, lawyers []*schema.Lawyer) schema.MatchSummary {
	summary := Match(&cfg.Issue, lawyers, MatchOptions{
		TopK:     cfg.ResultLimit,
		Catalog:  cfg.Catalog,
		Profiles: cfg.ComputedProfiles,
		Engine:   cfg.Engine,
	})
	summary.RequestID = uuid.NewString()
	return summary
}

// recordMatchRun persists the run and its ranked candidates to the history
// store. Recording failures degrade to warnings so a broken history backend
// never blocks match output.
func recordMatchRun(start time.Time, cfg *contract.Config, mgr contract.StoreManager, summary schema.MatchSummary) {
	history := mgr.GetHistoryStore()
	if history == nil {
		return
	}

	configParams := map[string]any{
		"request_id": summary.RequestID,
		"category":   cfg.Issue.Category,
		"budget_min": cfg.Issue.BudgetMin,
		"budget_max": cfg.Issue.BudgetMax,
		"urgency":    cfg.Issue.Urgency,
		"pricing":    cfg.Issue.PreferredPricing,
		"segment":    string(summary.Segment),
		"engine":     string(summary.Engine),
		"limit":      cfg.ResultLimit,
	}

	matchID, err := history.BeginMatch(start, summary.RequestID, configParams)
	if err != nil {
		contract.LogWarn("history begin failed", err)
		return
	}

	for i, result := range summary.Results {
		if err := history.RecordCandidate(matchID, i+1, result); err != nil {
			contract.LogWarn("history record failed", err)
			return
		}
	}

	if err := history.EndMatch(matchID, time.Now(), summary.TotalCandidates, len(summary.Results)); err != nil {
		contract.LogWarn("history end failed", err)
	}
}

// ExecuteCategories prints the active category catalog. With --explain, each
// entry also lists its similar catalog entries.
func ExecuteCategories(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	idx := BuildCategoryIndex(cfg.Catalog)
	names := idx.Names()

	var similar map[string][]string
	if cfg.Explain {
		similar = make(map[string][]string, len(names))
		for _, name := range names {
			related := make([]string, 0, cfg.MaxSimilar)
			for _, s := range idx.Similar(name, cfg.MaxSimilar+1) {
				if s == name {
					continue
				}
				related = append(related, s)
				if len(related) == cfg.MaxSimilar {
					break
				}
			}
			similar[name] = related
		}
	}

	return outwriter.NewOutWriter().WriteCategories(names, similar, cfg)
}

// ExecuteWeights displays the active weight profile per client segment.
// This is a static display that does not touch the roster.
func ExecuteWeights(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	return outwriter.NewOutWriter().WriteWeights(cfg.ComputedProfiles, cfg)
}

// ExecuteCheck verifies that the configured stores are reachable and prints
// their status. It serves as the entry point for the 'check' command.
func ExecuteCheck(_ context.Context, _ *contract.Config, mgr contract.StoreManager) error {
	roster := mgr.GetRosterStore()
	history := mgr.GetHistoryStore()
	if roster == nil && history == nil {
		return errors.New("no stores configured")
	}

	if roster != nil {
		status, err := roster.GetStatus()
		if err != nil {
			return err
		}
		dbstore.PrintRosterStatus(status)
	}

	if history != nil {
		status, err := history.GetStatus()
		if err != nil {
			return err
		}
		dbstore.PrintHistoryStatus(status)
	}

	return nil
}
