// Package dictionary loads English to French word pairs and resolves
// target words against them.
package dictionary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"github.com/verte-zerg/wordswap/internal/model"
)

const byteOrderMark = "\ufeff"

// RowError reports a dictionary row that does not hold an English and a
// French field.
type RowError struct {
	Row    int
	Fields int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("malformed dictionary row %d: expected 2 fields, got %d", e.Row, e.Fields)
}

// Dictionary is an ordered list of entries with a case-insensitive index.
// Lookup is not safe for concurrent use.
type Dictionary struct {
	entries []model.Entry
	index   map[string][]int
	folder  cases.Caser
}

// New builds a dictionary from entries, keeping their order.
func New(entries []model.Entry) *Dictionary {
	d := &Dictionary{
		entries: append([]model.Entry(nil), entries...),
		index:   make(map[string][]int, len(entries)),
		folder:  cases.Fold(),
	}
	for i, entry := range d.entries {
		key := d.foldKey(entry.English)
		d.index[key] = append(d.index[key], i)
	}
	return d
}

// LoadFile reads a dictionary CSV from path.
func LoadFile(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dictionary.
			_ = cerr
		}
	}()
	return Read(file)
}

// Read parses "english,french" rows from r. Fields past the second are
// ignored; rows with fewer than two fields fail with *RowError carrying the
// physical line number.
func Read(r io.Reader) (*Dictionary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	var entries []model.Entry
	for first := true; ; first = false {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse dictionary: %w", err)
		}
		row, _ := reader.FieldPos(0)
		if len(record) < 2 {
			return nil, &RowError{Row: row, Fields: len(record)}
		}
		english := strings.TrimSpace(record[0])
		if first {
			english = strings.TrimSpace(strings.TrimPrefix(english, byteOrderMark))
		}
		if english == "" {
			return nil, &RowError{Row: row, Fields: 1}
		}
		entries = append(entries, model.Entry{
			English: english,
			French:  strings.TrimSpace(record[1]),
		})
	}
	return New(entries), nil
}

// Lookup returns the first entry whose English word equals word ignoring case.
func (d *Dictionary) Lookup(word string) (model.Entry, bool) {
	for _, i := range d.index[d.foldKey(word)] {
		if strings.EqualFold(d.entries[i].English, word) {
			return d.entries[i], true
		}
	}
	return model.Entry{}, false
}

// Entries returns the entries in file order. The slice must not be modified.
func (d *Dictionary) Entries() []model.Entry {
	return d.entries
}

// Len returns the number of entries, duplicates included.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

func (d *Dictionary) foldKey(s string) string {
	return d.folder.String(s)
}
