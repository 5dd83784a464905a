package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/verte-zerg/wordswap/internal/model"
)

var frequencyHeader = []string{"English word", "French word", "Frequency"}

// BuildRows lists every dictionary entry in order with its frequency,
// defaulting to 0 for entries that never matched.
func BuildRows(entries []model.Entry, freq model.Frequency) []model.FrequencyRow {
	rows := make([]model.FrequencyRow, len(entries))
	for i, entry := range entries {
		rows[i] = model.FrequencyRow{
			English:   entry.English,
			French:    entry.French,
			Frequency: freq[entry.English],
		}
	}
	return rows
}

// WriteFrequencyCSV writes the frequency report with a header row.
func WriteFrequencyCSV(w io.Writer, rows []model.FrequencyRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(frequencyHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.English, row.French, strconv.Itoa(row.Frequency)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePerformance writes the processing time and memory snapshot.
func WritePerformance(w io.Writer, metrics model.Metrics) error {
	if _, err := fmt.Fprintf(w, "Time to process: %s\n", FormatDuration(metrics.Duration)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Memory used: %s\n", FormatMemory(metrics.MemoryBytes))
	return err
}

// FormatDuration renders d as whole minutes and remaining whole seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	seconds := int64(d/time.Second) % 60
	return fmt.Sprintf("%d minutes %d seconds", minutes, seconds)
}

// FormatMemory renders bytes as whole megabytes, rounded down.
func FormatMemory(bytes uint64) string {
	return fmt.Sprintf("%d MB", bytes/1024/1024)
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes path atomically: content goes to a temp file in the same
// directory that is renamed over path once write succeeds.
func WriteFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if err := write(writer); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
