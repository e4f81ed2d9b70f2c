package widget

import (
	"fmt"

	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
)

// MultiButton is a composite control that stacks a row of buttons at the
// right edge of a cell, leaving the remaining width for a primary control.
//
// Buttons are added left to right; the whole cluster is right-aligned within
// the cell once FinalizePosition is called. Buttons added without an explicit
// identity get a generated one from a negative sequence, which keeps them
// apart from host-allocated control identities (those are nonnegative).
type MultiButton struct {
	BaseControl
	buttons  []*Button
	nextAuto int
}

// NewMultiButton constructs a multi button for a cell of the given full
// dimensions.
// It is valid to never add a button to it.
func NewMultiButton(id int, box util.Rect, style styling.DrawStyling) *MultiButton {
	return &MultiButton{
		BaseControl: NewBaseControl(id, box, style),
		buttons:     nil,
		nextAuto:    -2,
	}
}

// Add appends a button with the given label and a generated identity and
// returns that identity.
func (m *MultiButton) Add(label string) int {
	id := m.nextAuto
	m.nextAuto--
	m.AddWithID(label, id)
	return id
}

// AddWithID appends a button with the given label under the given identity.
func (m *MultiButton) AddWithID(label string, id int) {
	m.buttons = append(m.buttons, NewButton(id, label, m.box.H, m.Style()))
}

// AddGlyph appends a single-rune button with a generated identity and returns
// that identity.
func (m *MultiButton) AddGlyph(g rune) int { return m.Add(string(g)) }

// AddGlyphWithID appends a single-rune button under the given identity.
func (m *MultiButton) AddGlyphWithID(g rune, id int) { m.AddWithID(string(g), id) }

// Count returns the number of buttons added so far.
func (m *MultiButton) Count() int { return len(m.buttons) }

// Button returns the i-th button (in order of addition).
// It panics when i is out of range, which indicates a programming error.
func (m *MultiButton) Button(i int) *Button {
	if i < 0 || i >= len(m.buttons) {
		panic(fmt.Sprintf("no button at index %d (have %d)", i, len(m.buttons)))
	}
	return m.buttons[i]
}

// ButtonID returns the identity of the i-th button.
// It panics when i is out of range, which indicates a programming error.
func (m *MultiButton) ButtonID(i int) int { return m.Button(i).ID() }

func (m *MultiButton) buttonsWidth() int {
	w := 0
	for _, b := range m.buttons {
		_, _, bw, _ := b.Box()
		w += bw
	}
	return w
}

// PrimarySize returns the dimensions left for the primary control next to the
// button cluster.
func (m *MultiButton) PrimarySize() (w, h int) {
	return m.box.W - m.buttonsWidth(), m.box.H
}

// FinalizePosition places the button cluster such that its right edge lines
// up with the right edge of the cell anchored at the given coordinates.
// It must be called after all buttons are added and before drawing; calling
// it with zero buttons is valid and a no-op beyond moving the cell.
func (m *MultiButton) FinalizePosition(x, y int) {
	m.MoveTo(x, y)
	bx := x + m.box.W - m.buttonsWidth()
	for _, b := range m.buttons {
		b.MoveTo(bx, y)
		_, _, bw, _ := b.Box()
		bx += bw
	}
}

// Draw draws the button cluster.
// The primary control draws itself; it is not this control's concern.
func (m *MultiButton) Draw(r ui.Renderer, focussed bool) {
	for _, b := range m.buttons {
		b.Draw(r, false)
	}
}

// HandleKey reports that this control does not process key input itself.
// Clicks on its buttons are routed by identity, not by key.
func (m *MultiButton) HandleKey(k input.Key) bool { return false }
