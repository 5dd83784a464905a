// Package model defines shared data structures.
package model

import "time"

// Entry is a single English to French dictionary pair.
type Entry struct {
	English string
	French  string
}

// Frequency maps a dictionary English word (exact case) to its match count.
type Frequency map[string]int

// Add increments the bucket for english by n. Non-positive n is ignored.
func (f Frequency) Add(english string, n int) {
	if n <= 0 {
		return
	}
	f[english] += n
}

// Total returns the sum of all buckets.
func (f Frequency) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// RunConfig defines the inputs and outputs of a translation run.
type RunConfig struct {
	InputPath       string
	WordsPath       string
	DictionaryPath  string
	OutputPath      string
	FrequencyPath   string
	PerformancePath string
	StrictWords     bool
	History         bool
}

// Metrics captures the cost of the translation pass.
type Metrics struct {
	Duration    time.Duration
	MemoryBytes uint64
}

// FrequencyRow is one line of the frequency report.
type FrequencyRow struct {
	English   string
	French    string
	Frequency int
}

// RunRecord describes a completed run for persistence.
type RunRecord struct {
	StartedAt      time.Time
	EndedAt        time.Time
	InputPath      string
	WordsPath      string
	DictionaryPath string
	OutputPath     string
	Lines          int
	Targets        int
	Entries        int
	Metrics        Metrics
}

// RunSummary is a stored run as listed in history.
type RunSummary struct {
	RunID       int64
	EndedAt     time.Time
	InputPath   string
	Lines       int
	Matches     int
	DurationMs  int64
	MemoryBytes uint64
}
