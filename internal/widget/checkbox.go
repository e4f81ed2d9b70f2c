package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
)

// CheckState enumerates the states of a CheckBox.
type CheckState int

const (
	// Unchecked is the unchecked state.
	Unchecked CheckState = iota
	// Checked is the checked state.
	Checked
	// Indeterminate is the state displaying "no determinate value".
	Indeterminate
)

// CheckBox is a togglable boolean control with an additional indeterminate
// display state.
type CheckBox struct {
	BaseControl

	state CheckState
}

// NewCheckBox constructs an unchecked check box with the given identity,
// dimensions, and style.
func NewCheckBox(id int, box util.Rect, style styling.DrawStyling) *CheckBox {
	return &CheckBox{BaseControl: NewBaseControl(id, box, style)}
}

// State returns the current state.
func (c *CheckBox) State() CheckState { return c.state }

// SetState sets the current state.
func (c *CheckBox) SetState(s CheckState) { c.state = s }

// Toggle switches between checked and unchecked; from the indeterminate
// state it toggles to checked.
func (c *CheckBox) Toggle() {
	if c.state == Checked {
		c.state = Unchecked
	} else {
		c.state = Checked
	}
}

// HandleKey lets this check box process a key input directed at it.
func (c *CheckBox) HandleKey(k input.Key) bool {
	if k.Key == tcell.KeyRune && (k.Ch == ' ' || k.Ch == 'x') {
		c.Toggle()
		return true
	}
	return false
}

// Draw draws this check box via the given renderer.
func (c *CheckBox) Draw(r ui.Renderer, focussed bool) {
	x, y, w, h := c.Box()

	style := c.Style()
	if focussed {
		style = style.DefaultEmphasized()
	}
	r.DrawBox(x, y, w, h, style)

	var marker string
	switch c.state {
	case Checked:
		marker = "[x]"
	case Unchecked:
		marker = "[ ]"
	case Indeterminate:
		marker = "[-]"
	}
	r.DrawText(x, y, 3, 1, style, marker)
}
