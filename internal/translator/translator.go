// Package translator rewrites corpus lines by substituting target words with
// their dictionary translations while counting how often each word was found.
package translator

import (
	"context"
	"runtime"
	"time"

	"github.com/verte-zerg/wordswap/internal/model"
)

// ctxCheckInterval is how many lines are processed between cancellation checks.
const ctxCheckInterval = 1024

// Resolver finds the dictionary entry for a target word.
type Resolver interface {
	Lookup(word string) (model.Entry, bool)
}

// TranslateLine applies every target word to line, in order, and adds the
// number of replacements to freq under the entry's English word.
//
// Replacements are sequential: each target is matched against the line as
// already rewritten by the targets before it.
func TranslateLine(line string, targets []string, dict Resolver, freq model.Frequency) string {
	for _, word := range targets {
		entry, ok := dict.Lookup(word)
		if !ok {
			continue
		}
		var n int
		line, n = ReplaceWord(line, word, entry.French)
		freq.Add(entry.English, n)
	}
	return line
}

// TranslateLines translates every line with a fresh frequency table.
func TranslateLines(lines, targets []string, dict Resolver) ([]string, model.Frequency) {
	freq := model.Frequency{}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = TranslateLine(line, targets, dict, freq)
	}
	return out, freq
}

// Result holds the output of a translation pass.
type Result struct {
	Lines     []string
	Frequency model.Frequency
	Metrics   model.Metrics
}

// Translator runs the translation pass over a corpus and measures it.
type Translator struct {
	targets []string
	dict    Resolver
	now     func() time.Time
}

// New returns a Translator for the given targets and dictionary.
func New(targets []string, dict Resolver) *Translator {
	return &Translator{
		targets: targets,
		dict:    dict,
		now:     time.Now,
	}
}

// Translate rewrites lines and reports the elapsed time and heap in use
// after the pass. It returns ctx.Err() if ctx is cancelled mid-run.
func (t *Translator) Translate(ctx context.Context, lines []string) (Result, error) {
	start := t.now()
	freq := model.Frequency{}
	out := make([]string, len(lines))
	for i, line := range lines {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		out[i] = TranslateLine(line, t.targets, t.dict, freq)
	}
	elapsed := t.now().Sub(start)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Result{
		Lines:     out,
		Frequency: freq,
		Metrics: model.Metrics{
			Duration:    elapsed,
			MemoryBytes: mem.HeapAlloc,
		},
	}, nil
}
