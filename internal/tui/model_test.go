// SPDX-License-Identifier: MIT
package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thatcatcamp/contrastkitty/internal/link"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func newTestModel(copied *string) Model {
	return New(palette.Default(), Options{
		Codec:   link.Codec{MaxEntries: 24},
		BaseURL: "https://contrast.example.com/",
		Copy: func(s string) error {
			*copied = s
			return nil
		},
	})
}

func TestNewGenerates(t *testing.T) {
	var copied string
	m := newTestModel(&copied)

	if !m.generated || m.matrix.Size() != 5 {
		t.Fatalf("Expected a generated 5x5 matrix, got %d", m.matrix.Size())
	}
	if !strings.HasPrefix(m.ShareURL(), "https://contrast.example.com/?n=White&v=FFFFFF") {
		t.Errorf("Unexpected share URL %q", m.ShareURL())
	}
}

func TestAddEntry(t *testing.T) {
	var copied string
	m := newTestModel(&copied)

	m = press(t, m, "a")
	if m.editing != fieldName {
		t.Fatal("Adding should start editing the name")
	}
	m = press(t, m, "Plum", "enter", "c")
	if m.editing != fieldColor || m.input.Value() != "#000000" {
		t.Fatalf("Color edit should start from the current color, got %q", m.input.Value())
	}
	m.input.SetValue("5a3b5d")
	m = press(t, m, "enter")

	p := m.Palette()
	if p.Len() != 6 {
		t.Fatalf("Expected 6 entries, got %d", p.Len())
	}
	last := p.Entries[5]
	if last.Name != "Plum" || last.Color.Hex() != "#5A3B5D" {
		t.Errorf("Unexpected new entry %+v", last)
	}
	if !m.stale {
		t.Error("Edits should mark the matrix stale")
	}

	m = press(t, m, "g")
	if m.stale || m.matrix.Size() != 6 {
		t.Errorf("Generate should rebuild the matrix, got %d", m.matrix.Size())
	}
}

func TestAddRespectsLimit(t *testing.T) {
	m := New(palette.Default(), Options{Codec: link.Codec{MaxEntries: 5}, Copy: func(string) error { return nil }})

	m = press(t, m, "a")
	if m.Palette().Len() != 5 || m.editing != fieldNone {
		t.Error("Add past the limit should be refused")
	}
	if !m.isError {
		t.Error("Expected an error status")
	}
}

func TestInvalidColorKeepsPrevious(t *testing.T) {
	var copied string
	m := newTestModel(&copied)

	m = press(t, m, "c")
	m.input.SetValue("nothex")
	m = press(t, m, "enter")

	if got := m.Palette().Entries[0].Color.Hex(); got != "#FFFFFF" {
		t.Errorf("Invalid input should keep the previous color, got %s", got)
	}
	if !m.isError || !strings.Contains(m.status, "kept #FFFFFF") {
		t.Errorf("Unexpected status %q", m.status)
	}
}

func TestEditKeepsLongText(t *testing.T) {
	long := strings.Repeat("Midnight blue ", 8)
	p := palette.Default()
	p.Title = long + "palette"
	p.Entries[0].Name = long

	m := New(p, Options{Copy: func(string) error { return nil }})
	m = press(t, m, "n", "enter", "t", "enter")

	got := m.Palette()
	if got.Entries[0].Name != long {
		t.Errorf("Name was cut to %q", got.Entries[0].Name)
	}
	if got.Title != long+"palette" {
		t.Errorf("Title was cut to %q", got.Title)
	}

	m = press(t, m, "n", "!", "enter")
	if name := m.Palette().Entries[0].Name; name != long+"!" {
		t.Errorf("Typing past 64 characters should append, got %q", name)
	}
}

func TestRemoveEntry(t *testing.T) {
	var copied string
	m := newTestModel(&copied)

	m = press(t, m, "down", "d")
	p := m.Palette()
	if p.Len() != 4 || p.Entries[1].Name != "Color 3" {
		t.Fatalf("Expected Color 2 removed, got %+v", p.Entries)
	}

	m = press(t, m, "down", "down", "down", "down", "x")
	if m.Palette().Len() != 3 || m.cursor != 2 {
		t.Errorf("Removing the last entry should move the cursor up, cursor=%d", m.cursor)
	}
}

func TestEscCancelsEdit(t *testing.T) {
	var copied string
	m := newTestModel(&copied)

	m = press(t, m, "t", "Draft", "esc")
	if m.editing != fieldNone {
		t.Error("Esc should stop editing")
	}
	if m.palette.Title() != "" {
		t.Errorf("Esc should discard the edit, title is %q", m.palette.Title())
	}
}

func TestRequireTitle(t *testing.T) {
	m := New(palette.Default(), Options{RequireTitle: true, Copy: func(string) error { return nil }})
	if m.generated {
		t.Fatal("Untitled palette should not generate")
	}

	m = press(t, m, "g")
	if m.generated || !m.isError {
		t.Fatal("Generate should be blocked without a title")
	}

	m = press(t, m, "t", "Brand", "enter", "g")
	if !m.generated {
		t.Fatal("Generate should succeed once titled")
	}
	if !strings.HasPrefix(m.ShareURL(), "?title=Brand&n=White") {
		t.Errorf("Unexpected share URL %q", m.ShareURL())
	}
}

func TestYank(t *testing.T) {
	var copied string
	m := newTestModel(&copied)

	m = press(t, m, "y")
	if copied == "" || copied != m.ShareURL() {
		t.Errorf("Copied %q, want %q", copied, m.ShareURL())
	}
	if m.status != "Copied share link" {
		t.Errorf("Unexpected status %q", m.status)
	}

	m.opts.Copy = func(string) error { return errors.New("no clipboard") }
	m = press(t, m, "y")
	if !m.isError || !strings.Contains(m.status, "no clipboard") {
		t.Errorf("Unexpected status %q", m.status)
	}
}

func TestQuit(t *testing.T) {
	var copied string
	m := newTestModel(&copied)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}

	m = press(t, m, "n")
	next, _ := m.Update(keyMsg("q"))
	m = next.(Model)
	if m.editing != fieldName || !strings.HasSuffix(m.input.Value(), "q") {
		t.Error("q while editing should be typed, not quit")
	}
}

func TestView(t *testing.T) {
	var copied string
	m := newTestModel(&copied)
	m = press(t, m, "down")

	out := m.View()
	for _, want := range []string{"(untitled)", "> ", "#FEDC2A Color 2", "AAA", "y copy link"} {
		if !strings.Contains(out, want) {
			t.Errorf("View should contain %q", want)
		}
	}

	m = press(t, m, "a")
	if out := m.View(); !strings.Contains(out, "(unnamed, not in matrix)") || !strings.Contains(out, "Name: ") {
		t.Error("View should show the unnamed row and the input line")
	}
}
