package reportui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordswap/internal/model"
)

var sampleRows = []model.FrequencyRow{
	{English: "hate", French: "haine", Frequency: 1},
	{English: "peace", French: "paix", Frequency: 0},
	{English: "love", French: "amour", Frequency: 4},
}

func TestBuildRowsDictionaryOrder(t *testing.T) {
	rows := buildRows(sampleRows, false, false)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "hate" || rows[1][0] != "peace" || rows[2][0] != "love" {
		t.Fatalf("unexpected order: %v", rows)
	}
}

func TestBuildRowsByFrequencyMatchedOnly(t *testing.T) {
	rows := buildRows(sampleRows, true, true)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "love" || rows[0][2] != "4" || rows[1][0] != "hate" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestUpdateTogglesAndQuits(t *testing.T) {
	m := NewModel("Run 1", sampleRows)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if !m.matchedOnly || len(m.table.Rows()) != 2 {
		t.Fatalf("expected matched-only filter to apply")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if !m.byFrequency || m.table.Rows()[0][0] != "love" {
		t.Fatalf("expected frequency sort to apply")
	}
	if view := m.View(); !strings.Contains(view, "Run 1") || !strings.Contains(view, "2 of 3 entries") {
		t.Fatalf("unexpected view:\n%s", view)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
