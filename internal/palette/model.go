// SPDX-License-Identifier: MIT
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/thatcatcamp/contrastkitty/internal/contrast"
)

// ErrMissingTitle is returned by Generate when a title is required but blank
var ErrMissingTitle = errors.New("palette title is required")

// ErrUnknownEntry is returned when an edit targets an entry that was removed
var ErrUnknownEntry = errors.New("unknown palette entry")

// EntryID identifies a row for its whole life, independent of position
type EntryID string

// NewEntryID returns a fresh random identifier
func NewEntryID() EntryID {
	return EntryID(uuid.NewString())
}

// ColorPicker turns raw user input from some widget into a color
type ColorPicker interface {
	Pick(input string) (contrast.Color, error)
}

// Model is the editable palette. The presentation layer holds entry IDs
// only; all state lives here. Not safe for concurrent use.
type Model struct {
	title   string
	order   []EntryID
	entries map[EntryID]Entry
}

// NewModel returns an empty model
func NewModel() *Model {
	return &Model{entries: make(map[EntryID]Entry)}
}

// FromPalette builds a model holding p's title and entries, in order
func FromPalette(p Palette) *Model {
	m := NewModel()
	m.SetTitle(p.Title)
	for _, e := range p.Entries {
		m.AddEntry(e.Name, e.Color)
	}
	return m
}

// AddEntry appends a row and returns its ID. Duplicate names and colors
// are allowed.
func (m *Model) AddEntry(name string, c contrast.Color) EntryID {
	id := NewEntryID()
	m.entries[id] = Entry{ID: id, Name: name, Color: c}
	m.order = append(m.order, id)
	return id
}

// RemoveEntry deletes a row; unknown IDs are ignored
func (m *Model) RemoveEntry(id EntryID) {
	if _, ok := m.entries[id]; !ok {
		return
	}
	delete(m.entries, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// SetName replaces a row's name
func (m *Model) SetName(id EntryID, name string) error {
	e, ok := m.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, id)
	}
	e.Name = name
	m.entries[id] = e
	return nil
}

// SetColor replaces a row's color
func (m *Model) SetColor(id EntryID, c contrast.Color) error {
	e, ok := m.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, id)
	}
	if c.IsZero() {
		return contrast.ErrInvalidColor
	}
	e.Color = c
	m.entries[id] = e
	return nil
}

// SetColorFrom runs input through picker and applies the result. When the
// picker rejects the input the previous color stays; the error is returned
// so the caller can show it, but the model is left consistent.
func (m *Model) SetColorFrom(id EntryID, picker ColorPicker, input string) error {
	if _, ok := m.entries[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, id)
	}
	c, err := picker.Pick(input)
	if err != nil {
		return err
	}
	return m.SetColor(id, c)
}

// SetTitle stores the title exactly as typed
func (m *Model) SetTitle(raw string) {
	m.title = raw
}

// Title returns the title exactly as typed
func (m *Model) Title() string {
	return m.title
}

// Entry looks up a row by ID
func (m *Model) Entry(id EntryID) (Entry, bool) {
	e, ok := m.entries[id]
	return e, ok
}

// Entries returns the rows in display order
func (m *Model) Entries() []Entry {
	out := make([]Entry, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.entries[id])
	}
	return out
}

// IDs returns the row IDs in display order
func (m *Model) IDs() []EntryID {
	return append([]EntryID(nil), m.order...)
}

// Len returns the number of rows, named or not
func (m *Model) Len() int {
	return len(m.order)
}

// Snapshot returns the full editable state, unnamed rows included
func (m *Model) Snapshot() Palette {
	return Palette{Title: m.title, Entries: m.Entries()}
}

// SnapshotForGeneration returns what the matrix is built from: the trimmed
// title and only rows with a name and a usable color
func (m *Model) SnapshotForGeneration() Palette {
	return m.Snapshot().Named()
}

// Options controls generation policy
type Options struct {
	RequireTitle bool
}

// Generate snapshots m for matrix building, enforcing opts
func Generate(m *Model, opts Options) (Palette, error) {
	p := m.SnapshotForGeneration()
	if opts.RequireTitle && strings.TrimSpace(p.Title) == "" {
		return Palette{}, ErrMissingTitle
	}
	return p, nil
}
