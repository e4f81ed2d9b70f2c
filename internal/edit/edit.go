// Package edit defines the contract between a grid host and the pluggable
// in-place editors that can be attached to its rows.
//
// An Editor is a stateless singleton describing one kind of editing
// experience (a text field, a dropdown, ...). All per-row state lives in the
// controls it materializes and in the edited property; the host owns both.
package edit

import (
	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/widget"
)

// Editor is the polymorphic contract an in-place editor implements.
//
// Implementations are expected to embed BaseEditor for the default behavior
// of the optional operations.
type Editor interface {
	// GetName returns the stable name under which this editor is known to
	// a registry.
	GetName() string

	// CreateControls materializes this editor's controls for the given
	// property within the given cell.
	// Control identities are to be allocated via the host. On failure it
	// returns an invalid (empty) set, never a partial one.
	CreateControls(host Host, prop model.Property, x, y, w, h int) ControlSet

	// UpdateControl pushes the property's current value into the controls.
	// It is idempotent and handles unspecified values (via
	// SetValueToUnspecified).
	UpdateControl(prop model.Property, cs ControlSet)

	// DrawValue draws the property's value for a row that is not being
	// edited, i.E. without live controls.
	DrawValue(r ui.Renderer, x, y, w, h int, style styling.DrawStyling, prop model.Property, text string)

	// OnEvent lets this editor process an event directed at its controls.
	// It returns whether the control value now differs from the property
	// value as of the last UpdateControl. It never mutates the property.
	OnEvent(host Host, prop model.Property, primary widget.Control, ev Event) bool

	// GetValueFromControl reads the pending value out of the controls into
	// out, converting via the property's own conversions, and returns
	// whether that value differs from the property's current one.
	// This is the only operation that produces a committable value.
	GetValueFromControl(out *model.Value, prop model.Property, cs ControlSet) bool

	// SetValueToUnspecified puts the controls into the blank or neutral
	// state displaying "no value".
	SetValueToUnspecified(prop model.Property, cs ControlSet)

	// SetControlStringValue sets the controls' displayed value from a raw
	// string, without involving the property.
	SetControlStringValue(cs ControlSet, s string)

	// SetControlIntValue sets the controls' displayed value from a raw
	// integer, without involving the property.
	SetControlIntValue(cs ControlSet, v int)

	// InsertItem inserts a list item into a list-like control and returns
	// the index it ended up at, or -1 if the control is not list-like.
	// A negative index appends.
	InsertItem(ctrl widget.Control, label string, index int) int

	// DeleteItem removes a list item from a list-like control.
	DeleteItem(ctrl widget.Control, index int)

	// OnFocus notifies this editor that its primary control received focus.
	OnFocus(prop model.Property, ctrl widget.Control)

	// CanContainCustomImage returns whether this editor draws a custom
	// glyph in place of the value text.
	CanContainCustomImage() bool
}

// Host is the surface a grid offers to editors during control creation and
// event processing.
type Host interface {
	// AllocateControlID hands out a fresh nonnegative control identity.
	AllocateControlID() int

	// Stylesheet returns the styles controls are to be drawn in.
	Stylesheet() styling.Stylesheet

	// ActiveControls returns the controls of the current edit session, or
	// an invalid set if no row is being edited.
	ActiveControls() ControlSet
}

// ControlSet bundles the controls an editor materializes for one edit
// session. Primary is required; Secondary (e.g. a button cluster) is
// optional. The host owns both.
type ControlSet struct {
	Primary   widget.Control
	Secondary widget.Control
}

// Valid returns whether this set is usable, i.E. control creation succeeded.
func (cs ControlSet) Valid() bool { return cs.Primary != nil }

// An Event is an input occurrence routed to an editor.
type Event interface{ event() }

// KeyEvent is a terminal key press directed at the primary control.
type KeyEvent struct {
	Key input.Key
}

// ButtonClick is the press of an auxiliary button, identified by the
// button's control identity.
type ButtonClick struct {
	ButtonID int
}

func (KeyEvent) event()    {}
func (ButtonClick) event() {}
