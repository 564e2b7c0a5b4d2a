package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/schema"

	"github.com/olekukonko/tablewriter"
)

// segmentPurposes documents what each client segment targets.
var segmentPurposes = map[schema.Segment]string{
	schema.BudgetConsciousSegment: "Price-sensitive clients - pricing fit dominates",
	schema.QualityFocusedSegment:  "Outcome-driven clients - expertise and track record dominate",
	schema.UrgentSegment:          "Time-critical matters - availability dominates",
	schema.DefaultSegment:         "Balanced weighting for everyone else",
}

// WriteWeightDefinitions outputs the weight profile definitions, dispatching
// based on the output format configured.
func WriteWeightDefinitions(profiles map[schema.Segment]schema.WeightProfile, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForWeights(w, profiles)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeightTables(profiles, cfg, w)
		}, "Wrote table")
	}
}

// writeWeightTables generates and writes one table per segment.
func writeWeightTables(profiles map[schema.Segment]schema.WeightProfile, cfg *contract.Config, writer io.Writer) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	if _, err := fmt.Fprintln(writer, "Match Weight Profiles"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer, "Score = weighted sum of six factor scores (each 0-100)"); err != nil {
		return err
	}

	for _, segment := range schema.AllSegments {
		profile, ok := profiles[segment]
		if !ok {
			continue
		}

		if _, err := fmt.Fprintf(writer, "\n%s\n", strings.ToUpper(string(segment))); err != nil {
			return err
		}
		if purpose, ok := segmentPurposes[segment]; ok {
			if _, err := fmt.Fprintf(writer, "%s\n", purpose); err != nil {
				return err
			}
		}

		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Factor", "Weight"})

		var data [][]string
		for _, factor := range schema.AllFactors {
			data = append(data, []string{string(factor), fmtFloat(profile[factor])})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, "Formula: %s\n", formatWeights(profile)); err != nil {
			return err
		}
	}
	return nil
}

// formatWeights formats a profile's weights for display in formulas.
func formatWeights(profile schema.WeightProfile) string {
	var parts []string
	for _, factor := range schema.AllFactors {
		if weight, ok := profile[factor]; ok && weight > 0 {
			parts = append(parts, fmt.Sprintf("%.2f*%s", weight, factor))
		}
	}
	return strings.Join(parts, "+")
}

// writeJSONResultsForWeights writes the weight profiles in JSON format.
func writeJSONResultsForWeights(w io.Writer, profiles map[schema.Segment]schema.WeightProfile) error {
	type JSONProfile struct {
		Segment schema.Segment               `json:"segment"`
		Purpose string                       `json:"purpose"`
		Weights map[schema.FactorKey]float64 `json:"weights"`
	}

	var output []JSONProfile
	for _, segment := range schema.AllSegments {
		profile, ok := profiles[segment]
		if !ok {
			continue
		}
		output = append(output, JSONProfile{
			Segment: segment,
			Purpose: segmentPurposes[segment],
			Weights: profile,
		})
	}

	return writeJSON(w, output)
}
