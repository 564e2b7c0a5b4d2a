package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lawyerconnect/lawmatch/internal/contract"
	"github.com/lawyerconnect/lawmatch/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteCategoryResults outputs the category catalog, dispatching based on the
// output format configured. When similar is non-nil it maps each category to
// its related catalog entries and an extra column is added.
func WriteCategoryResults(categories []string, similar map[string][]string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForCategories(w, categories, similar)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForCategories(csvWriter, categories, similar)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCategoryTable(categories, similar, w)
		}, "Wrote table")
	}
}

// writeCategoryTable generates and writes the human-readable table.
func writeCategoryTable(categories []string, similar map[string][]string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"#", "Category"}
	if similar != nil {
		headers = append(headers, "Similar")
	}
	table.Header(headers)

	var data [][]string
	for i, name := range categories {
		row := []string{strconv.Itoa(i + 1), name}
		if similar != nil {
			row = append(row, strings.Join(similar[name], ", "))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "%d categories in catalog\n", len(categories)); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForCategories writes the catalog in CSV format.
func writeCSVResultsForCategories(w *csv.Writer, categories []string, similar map[string][]string) error {
	header := []string{"rank", "category"}
	if similar != nil {
		header = append(header, "similar")
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, name := range categories {
		rec := []string{strconv.Itoa(i + 1), name}
		if similar != nil {
			rec = append(rec, strings.Join(similar[name], "|"))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForCategories writes the catalog in JSON format.
func writeJSONResultsForCategories(w io.Writer, categories []string, similar map[string][]string) error {
	type JSONCategory struct {
		Rank     int      `json:"rank"`
		Category string   `json:"category"`
		Similar  []string `json:"similar,omitempty"`
	}

	output := make([]JSONCategory, len(categories))
	for i, name := range categories {
		output[i] = JSONCategory{
			Rank:     i + 1,
			Category: name,
		}
		if similar != nil {
			output[i].Similar = similar[name]
		}
	}

	return writeJSON(w, output)
}
