// Package widget provides the interactive terminal controls editors
// materialize in a grid cell: text fields, dropdowns, check boxes, spinners,
// date fields, and (clusters of) action buttons.
package widget

import (
	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
)

// A Control is an interactive widget materialized by an editor.
//
// A control carries a numeric identity by which its owner disambiguates
// events between the controls of one edit session.
type Control interface {
	// ID returns the identity of this control.
	ID() int

	// Box returns the position and dimensions of this control.
	Box() (x, y, w, h int)

	// MoveTo moves this control to the given position.
	MoveTo(x, y int)

	// Draw draws this control via the given renderer.
	Draw(r ui.Renderer, focussed bool)

	// HandleKey lets this control process a key input directed at it.
	// Returns whether the input "applied", i.E. the control changed state
	// based on it.
	HandleKey(k input.Key) bool
}

// BaseControl is the base data shared by controls and provides the trivial
// accessor implementations over them.
type BaseControl struct {
	id    int
	box   util.Rect
	style styling.DrawStyling
}

// NewBaseControl constructs the base data for a control with the given
// identity, dimensions, and style.
func NewBaseControl(id int, box util.Rect, style styling.DrawStyling) BaseControl {
	return BaseControl{id: id, box: box, style: style}
}

// ID returns the identity of this control.
func (c *BaseControl) ID() int { return c.id }

// Box returns the position and dimensions of this control.
func (c *BaseControl) Box() (x, y, w, h int) {
	return c.box.X, c.box.Y, c.box.W, c.box.H
}

// MoveTo moves this control to the given position.
func (c *BaseControl) MoveTo(x, y int) {
	c.box.X = x
	c.box.Y = y
}

// Style returns the style this control is drawn in.
func (c *BaseControl) Style() styling.DrawStyling { return c.style }
