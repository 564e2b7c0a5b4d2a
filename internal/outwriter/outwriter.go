// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteMatches prints ranked match results using the configured output format.
func (ow *OutWriter) WriteMatches(summary schema.MatchSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteMatchResults(summary, cfg, duration)
}

// WriteCategories prints the category catalog using the configured output format.
func (ow *OutWriter) WriteCategories(categories []string, similar map[string][]string, cfg *contract.Config) error {
	return WriteCategoryResults(categories, similar, cfg)
}

// WriteWeights prints weight profile definitions using the configured output format.
func (ow *OutWriter) WriteWeights(profiles map[schema.Segment]schema.WeightProfile, cfg *contract.Config) error {
	return WriteWeightDefinitions(profiles, cfg)
}
