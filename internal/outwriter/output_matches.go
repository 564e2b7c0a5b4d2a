package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteMatchResults outputs the ranked match results, dispatching based on the output format configured.
func WriteMatchResults(summary schema.MatchSummary, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeMatchJSONResults(summary, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeMatchCSVResults(summary, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatchTable(summary, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeMatchJSONResults handles opening the file and calling the JSON writer.
func writeMatchJSONResults(summary schema.MatchSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForMatches(w, summary)
	}, "Wrote JSON")
}

// writeMatchCSVResults handles opening the file and calling the CSV writer.
func writeMatchCSVResults(summary schema.MatchSummary, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForMatches(csvWriter, summary, fmtFloat)
	}, "Wrote CSV")
}

// label returns the match quality label, colored only for table output.
func label(score float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(score)
	}
	return contract.GetPlainLabel(score)
}

// writeMatchTable generates and writes the human-readable table.
func writeMatchTable(summary schema.MatchSummary, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Lawyer", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "Case", "Spec", "Success", "Avail", "Price", "Profile")
	}
	if cfg.Explain {
		headers = append(headers, "Reasons")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, r := range summary.Results {
		// Prepare the row data as a slice of strings
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(r.Lawyer.Name, getMaxTableNameWidth(cfg)), // Lawyer
			fmtFloat(r.Score),    // Score
			label(r.Score, cfg),  // Label
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(r.Factors[schema.FactorCaseType]),       // Case
				fmtFloat(r.Factors[schema.FactorSpecialization]), // Spec
				fmtFloat(r.Factors[schema.FactorSuccessRate]),    // Success
				fmtFloat(r.Factors[schema.FactorAvailability]),   // Avail
				fmtFloat(r.Factors[schema.FactorPricing]),        // Price
				fmtFloat(r.Factors[schema.FactorClientProfile]),  // Profile
			)
		}
		if cfg.Explain {
			reasons := strings.Join(r.Reasons, "; ")
			if reasons == "" {
				reasons = "Not applicable"
			}
			row = append(row, reasons)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d of %d candidates (segment: %s, engine: %s)\n",
		len(summary.Results), summary.TotalCandidates, summary.Segment, summary.Engine); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Matching completed in %v. Request ID: %s\n", duration, summary.RequestID); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForMatches writes the match results in CSV format.
func writeCSVResultsForMatches(w *csv.Writer, summary schema.MatchSummary, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"rank",
		"lawyer_id",
		"lawyer",
		"score",
		"label",
		"case_type",
		"specialization",
		"success_rate",
		"availability",
		"pricing",
		"client_profile",
		"reasons",
		"segment",
		"engine",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range summary.Results {
		rec := []string{
			strconv.Itoa(i + 1),                       // Rank
			strconv.FormatInt(r.Lawyer.ID, 10),        // Lawyer ID
			r.Lawyer.Name,                             // Lawyer Name
			fmtFloat(r.Score),                         // Score
			contract.GetPlainLabel(r.Score),           // Label
			fmtFloat(r.Factors[schema.FactorCaseType]),       // Case Type
			fmtFloat(r.Factors[schema.FactorSpecialization]), // Specialization
			fmtFloat(r.Factors[schema.FactorSuccessRate]),    // Success Rate
			fmtFloat(r.Factors[schema.FactorAvailability]),   // Availability
			fmtFloat(r.Factors[schema.FactorPricing]),        // Pricing
			fmtFloat(r.Factors[schema.FactorClientProfile]),  // Client Profile
			strings.Join(r.Reasons, "|"),              // Reasons
			string(summary.Segment),                   // Segment
			string(summary.Engine),                    // Engine
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForMatches writes the match results in JSON format.
func writeJSONResultsForMatches(w io.Writer, summary schema.MatchSummary) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONMatchResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.MatchResult
	}

	type JSONMatchSummary struct {
		RequestID       string            `json:"request_id"`
		Segment         schema.Segment    `json:"segment"`
		Engine          schema.EngineMode `json:"engine"`
		TotalCandidates int               `json:"total_candidates"`
		Results         []JSONMatchResult `json:"results"`
	}

	output := JSONMatchSummary{
		RequestID:       summary.RequestID,
		Segment:         summary.Segment,
		Engine:          summary.Engine,
		TotalCandidates: summary.TotalCandidates,
		Results:         make([]JSONMatchResult, len(summary.Results)),
	}
	for i, r := range summary.Results {
		output.Results[i] = JSONMatchResult{
			Rank:        i + 1,
			Label:       contract.GetPlainLabel(r.Score),
			MatchResult: r,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
