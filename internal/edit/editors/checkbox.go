package editors

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propgrid/internal/edit"
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
	"github.com/ja-he/propgrid/internal/widget"
)

// CheckBox edits a boolean property through a tri-state check control, the
// indeterminate state displaying the unspecified value.
type CheckBox struct {
	edit.BaseEditor
}

// GetName returns this editor's registry name.
func (CheckBox) GetName() string { return "CheckBox" }

// CreateControls materializes the check control for the given cell.
func (CheckBox) CreateControls(host edit.Host, prop model.Property, x, y, w, h int) edit.ControlSet {
	box := widget.NewCheckBox(host.AllocateControlID(), util.NewRect(x, y, w, h), host.Stylesheet().Editor)
	return edit.ControlSet{Primary: box}
}

// UpdateControl pushes the property's value into the check control.
func (e CheckBox) UpdateControl(prop model.Property, cs edit.ControlSet) {
	if prop.IsUnspecified() {
		e.SetValueToUnspecified(prop, cs)
		return
	}
	box, ok := cs.Primary.(*widget.CheckBox)
	if !ok {
		log.Warn().Msg("check box editor given a non-check-box control (likely logic error)")
		return
	}
	if prop.ValueInt() != 0 {
		box.SetState(widget.Checked)
	} else {
		box.SetState(widget.Unchecked)
	}
}

// DrawValue draws the check glyph for a row that is not being edited.
func (CheckBox) DrawValue(r ui.Renderer, x, y, w, h int, style styling.DrawStyling, prop model.Property, text string) {
	glyph := "[ ]"
	switch {
	case prop.IsUnspecified():
		glyph = "[-]"
	case prop.ValueInt() != 0:
		glyph = "[x]"
	}
	r.DrawText(x, y, w, h, style, glyph)
}

// OnEvent lets the check control process key input (the activation key
// toggles) and reports whether its state now differs from the property's
// value.
func (e CheckBox) OnEvent(host edit.Host, prop model.Property, primary widget.Control, ev edit.Event) bool {
	keyEvent, ok := ev.(edit.KeyEvent)
	if !ok {
		return false
	}

	box, isBox := primary.(*widget.CheckBox)
	applied := false
	if keyEvent.Key.Key == tcell.KeyEnter && isBox {
		box.Toggle()
		applied = true
	} else {
		applied = primary.HandleKey(keyEvent.Key)
	}
	if !applied {
		return false
	}

	var pending model.Value
	return e.GetValueFromControl(&pending, prop, host.ActiveControls())
}

// GetValueFromControl converts the check state via the property and reports
// whether the result differs from the property's value.
func (CheckBox) GetValueFromControl(out *model.Value, prop model.Property, cs edit.ControlSet) bool {
	box, ok := cs.Primary.(*widget.CheckBox)
	if !ok {
		log.Warn().Msg("check box editor given a non-check-box control (likely logic error)")
		return false
	}

	if box.State() == widget.Indeterminate {
		*out = model.UnspecifiedValue()
		return !prop.IsUnspecified()
	}

	checked := 0
	if box.State() == widget.Checked {
		checked = 1
	}
	value, err := prop.IntToValue(checked)
	if err != nil {
		log.Debug().Msgf("check state not convertible for '%s' (%s)", prop.Name(), err.Error())
		return false
	}
	*out = value
	return prop.IsUnspecified() || !value.Equal(prop.Value())
}

// SetValueToUnspecified puts the check control into the indeterminate state.
func (CheckBox) SetValueToUnspecified(prop model.Property, cs edit.ControlSet) {
	if box, ok := cs.Primary.(*widget.CheckBox); ok {
		box.SetState(widget.Indeterminate)
	}
}

// SetControlIntValue sets the check state directly (nonzero checks).
func (CheckBox) SetControlIntValue(cs edit.ControlSet, v int) {
	box, ok := cs.Primary.(*widget.CheckBox)
	if !ok {
		return
	}
	if v != 0 {
		box.SetState(widget.Checked)
	} else {
		box.SetState(widget.Unchecked)
	}
}

// CanContainCustomImage returns true; this editor draws a glyph instead of
// value text.
func (CheckBox) CanContainCustomImage() bool { return true }
