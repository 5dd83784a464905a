package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/wordswap/internal/model"
)

const maxCellWidth = 32

// Summary describes a finished run for console output.
type Summary struct {
	Lines   int
	Targets int
	Entries int
	Metrics model.Metrics
	Rows    []model.FrequencyRow
}

// Matches returns the total number of replacements in the run.
func (s Summary) Matches() int {
	total := 0
	for _, row := range s.Rows {
		total += row.Frequency
	}
	return total
}

// RenderSummary prints the run totals followed by the top matched words.
func RenderSummary(w io.Writer, s Summary, top int) error {
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Lines: %s\n", humanize.Comma(int64(s.Lines))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Target words: %d\n", s.Targets); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Dictionary entries: %d\n", s.Entries); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Replacements: %s\n", humanize.Comma(int64(s.Matches()))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Time to process: %s\n", FormatDuration(s.Metrics.Duration)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Memory used: %s\n", humanize.IBytes(s.Metrics.MemoryBytes)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	topRows := TopRows(s.Rows, top)
	if len(topRows) == 0 {
		_, err := fmt.Fprintln(w, "No target words found in the corpus.")
		return err
	}
	return RenderFrequencyTable(w, fmt.Sprintf("Top %d Words", len(topRows)), topRows)
}

// RenderFrequencyTable prints rows as an aligned table under title.
func RenderFrequencyTable(w io.Writer, title string, rows []model.FrequencyRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No dictionary entries found.")
		return err
	}
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, []string{
			truncateCell(row.English, maxCellWidth),
			truncateCell(row.French, maxCellWidth),
			strconv.Itoa(row.Frequency),
		})
	}
	lines := formatTable(frequencyHeader, tableRows, map[int]bool{2: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// TopRows returns up to n rows with a non-zero frequency, most frequent
// first. Ties keep dictionary order. n <= 0 returns every matched row.
func TopRows(rows []model.FrequencyRow, n int) []model.FrequencyRow {
	matched := make([]model.FrequencyRow, 0, len(rows))
	for _, row := range rows {
		if row.Frequency > 0 {
			matched = append(matched, row)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Frequency > matched[j].Frequency
	})
	if n > 0 && n < len(matched) {
		matched = matched[:n]
	}
	return matched
}
