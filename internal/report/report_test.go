package report

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordswap/internal/model"
)

func TestBuildRowsListsEveryEntryInOrder(t *testing.T) {
	entries := []model.Entry{
		{English: "love", French: "amour"},
		{English: "hate", French: "haine"},
		{English: "Love", French: "aimer"},
	}
	rows := BuildRows(entries, model.Frequency{"love": 2})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []model.FrequencyRow{
		{English: "love", French: "amour", Frequency: 2},
		{English: "hate", French: "haine", Frequency: 0},
		{English: "Love", French: "aimer", Frequency: 0},
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}
}

func TestWriteFrequencyCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []model.FrequencyRow{
		{English: "love", French: "amour", Frequency: 2},
		{English: "hate", French: "haine", Frequency: 0},
	}
	if err := WriteFrequencyCSV(&buf, rows); err != nil {
		t.Fatalf("WriteFrequencyCSV failed: %v", err)
	}
	want := "English word,French word,Frequency\nlove,amour,2\nhate,haine,0\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestWritePerformance(t *testing.T) {
	var buf bytes.Buffer
	metrics := model.Metrics{Duration: 2*time.Minute + 5*time.Second + 900*time.Millisecond, MemoryBytes: 3*1024*1024 + 512}
	if err := WritePerformance(&buf, metrics); err != nil {
		t.Fatalf("WritePerformance failed: %v", err)
	}
	want := "Time to process: 2 minutes 5 seconds\nMemory used: 3 MB\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0 minutes 0 seconds"},
		{59 * time.Second, "0 minutes 59 seconds"},
		{61 * time.Minute, "61 minutes 0 seconds"},
		{-time.Second, "0 minutes 0 seconds"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Fatalf("FormatDuration(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestWriteLinesTerminatesEveryLine(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"a", "", "b"}); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}
	if buf.String() != "a\n\nb\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestWriteFileReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "frequency.csv")
	if err := WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "first\n")
		return err
	}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	failure := errors.New("boom")
	err := WriteFile(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return failure
	})
	if !errors.Is(err, failure) {
		t.Fatalf("expected wrapped failure, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "first\n" {
		t.Fatalf("expected previous content to survive, got %q", data)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, got %d entries", len(entries))
	}
}

func TestTopRows(t *testing.T) {
	rows := []model.FrequencyRow{
		{English: "a", Frequency: 1},
		{English: "b", Frequency: 0},
		{English: "c", Frequency: 5},
		{English: "d", Frequency: 1},
	}
	top := TopRows(rows, 2)
	if len(top) != 2 || top[0].English != "c" || top[1].English != "a" {
		t.Fatalf("unexpected top rows: %+v", top)
	}
	if all := TopRows(rows, 0); len(all) != 3 {
		t.Fatalf("expected 3 matched rows, got %d", len(all))
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	s := Summary{
		Lines:   1200,
		Targets: 2,
		Entries: 2,
		Metrics: model.Metrics{Duration: 3 * time.Second, MemoryBytes: 2048},
		Rows: []model.FrequencyRow{
			{English: "love", French: "amour", Frequency: 2},
			{English: "hate", French: "haine", Frequency: 0},
		},
	}
	if err := RenderSummary(&buf, s, 10); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Lines: 1,200", "Replacements: 2", "Memory used: 2.0 KiB", "Top 1 Words", "love          amour                2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "haine") {
		t.Fatalf("expected unmatched words to be left out of the top table:\n%s", out)
	}
}

func TestRenderSummaryNoMatches(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, Summary{}, 5); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No target words found in the corpus.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
