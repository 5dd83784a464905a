package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/wordswap/internal/model"
)

// RenderRuns prints recorded runs as a table, oldest first.
func RenderRuns(w io.Writer, runs []model.RunSummary) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	headers := []string{"Run", "Finished", "Input", "Lines", "Replacements", "Time", "Memory"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			strconv.FormatInt(run.RunID, 10),
			run.EndedAt.Local().Format("2006-01-02 15:04"),
			truncateCell(run.InputPath, maxCellWidth),
			humanize.Comma(int64(run.Lines)),
			humanize.Comma(int64(run.Matches)),
			FormatDuration(time.Duration(run.DurationMs) * time.Millisecond),
			humanize.IBytes(run.MemoryBytes),
		})
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
