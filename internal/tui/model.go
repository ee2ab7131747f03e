// SPDX-License-Identifier: MIT
package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thatcatcamp/contrastkitty/internal/contrast"
	"github.com/thatcatcamp/contrastkitty/internal/link"
	"github.com/thatcatcamp/contrastkitty/internal/matrix"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
	"github.com/thatcatcamp/contrastkitty/internal/picker"
)

// field is the value currently being edited in the input line
type field int

const (
	fieldNone field = iota
	fieldName
	fieldColor
	fieldTitle
)

// newEntryColor is the color given to entries added with "a"
var newEntryColor = contrast.MustParseColor("000000")

// Options configures the editor
type Options struct {
	Codec        link.Codec
	BaseURL      string // share links point here
	RequireTitle bool
	Picker       palette.ColorPicker // defaults to the hex field
	Copy         func(string) error  // defaults to the system clipboard
}

// Model is the bubbletea model for the terminal palette editor
type Model struct {
	palette *palette.Model
	opts    Options

	cursor  int
	editing field
	input   textinput.Model

	matrix    matrix.Matrix
	generated bool
	stale     bool
	shareURL  string

	status  string
	isError bool
	width   int
}

// New returns an editor for p
func New(p palette.Palette, opts Options) Model {
	if opts.Picker == nil {
		opts.Picker = picker.HexField{}
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}

	// No CharLimit: names and titles from a link may be any length
	ti := textinput.New()
	ti.Width = 40

	m := Model{
		palette: palette.FromPalette(p),
		opts:    opts,
		input:   ti,
	}
	m.generate()
	return m
}

// Palette returns the editable state, unnamed entries included
func (m Model) Palette() palette.Palette {
	return m.palette.Snapshot()
}

// ShareURL returns the link for the last generated matrix
func (m Model) ShareURL() string {
	return m.shareURL
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing != fieldNone {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := m.palette.IDs()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(ids)-1 {
			m.cursor++
		}
	case "a":
		if limit := m.opts.Codec.MaxEntries; limit > 0 && m.palette.Len() >= limit {
			m.setError("A palette holds at most %d colors", limit)
			return m, nil
		}
		m.palette.AddEntry("", newEntryColor)
		m.cursor = m.palette.Len() - 1
		m.stale = true
		return m.startEdit(fieldName)
	case "d", "x":
		if len(ids) == 0 {
			return m, nil
		}
		m.palette.RemoveEntry(ids[m.cursor])
		if m.cursor >= m.palette.Len() && m.cursor > 0 {
			m.cursor--
		}
		m.stale = true
	case "enter", "n":
		if len(ids) > 0 {
			return m.startEdit(fieldName)
		}
	case "c":
		if len(ids) > 0 {
			return m.startEdit(fieldColor)
		}
	case "t":
		return m.startEdit(fieldTitle)
	case "g":
		m.generate()
	case "y":
		m.yank()
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.stopEdit()
		return m, nil
	case "enter":
		m.commitEdit()
		m.stopEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startEdit fills the input line with the current value of f
func (m Model) startEdit(f field) (tea.Model, tea.Cmd) {
	m.editing = f
	m.status = ""

	switch f {
	case fieldName:
		e, _ := m.selected()
		m.input.Prompt = "Name: "
		m.input.Placeholder = "Color name"
		m.input.SetValue(e.Name)
	case fieldColor:
		e, _ := m.selected()
		m.input.Prompt = "Color: "
		m.input.Placeholder = "#RRGGBB"
		m.input.SetValue(e.Color.Hex())
	case fieldTitle:
		m.input.Prompt = "Title: "
		m.input.Placeholder = "Palette title"
		m.input.SetValue(m.palette.Title())
	}

	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) stopEdit() {
	m.editing = fieldNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) commitEdit() {
	value := m.input.Value()

	switch m.editing {
	case fieldTitle:
		m.palette.SetTitle(value)
	case fieldName:
		if e, ok := m.selected(); ok {
			_ = m.palette.SetName(e.ID, value)
		}
	case fieldColor:
		e, ok := m.selected()
		if !ok {
			return
		}
		if err := m.palette.SetColorFrom(e.ID, m.opts.Picker, value); err != nil {
			m.setError("%q is not a color, kept %s", value, e.Color.Hex())
			return
		}
	}
	m.stale = true
}

// generate rebuilds the matrix from the named entries
func (m *Model) generate() bool {
	p, err := palette.Generate(m.palette, palette.Options{RequireTitle: m.opts.RequireTitle})
	if errors.Is(err, palette.ErrMissingTitle) {
		m.setError("Add a title (t) to generate the matrix")
		return false
	}

	m.matrix = matrix.Build(p)
	m.shareURL = m.opts.Codec.ShareURL(m.opts.BaseURL, p)
	m.generated = true
	m.stale = false
	m.status = ""
	m.isError = false
	return true
}

// yank generates and copies the share link
func (m *Model) yank() {
	if !m.generate() {
		return
	}
	if err := m.opts.Copy(m.shareURL); err != nil {
		m.setError("Copy failed: %v", err)
		return
	}
	m.status = "Copied share link"
	m.isError = false
}

func (m Model) selected() (palette.Entry, bool) {
	ids := m.palette.IDs()
	if m.cursor < 0 || m.cursor >= len(ids) {
		return palette.Entry{}, false
	}
	return m.palette.Entry(ids[m.cursor])
}

func (m *Model) setError(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.isError = true
}
