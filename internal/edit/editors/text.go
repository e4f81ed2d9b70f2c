// Package editors provides the builtin editors a freshly constructed
// registry is usually seeded with (see RegisterBuiltins).
package editors

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propgrid/internal/edit"
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/util"
	"github.com/ja-he/propgrid/internal/widget"
)

// Text edits a property through a single-line text field, round-tripping via
// the property's string conversion. An empty field reads as the unspecified
// value.
type Text struct {
	edit.BaseEditor
}

// GetName returns this editor's registry name.
func (Text) GetName() string { return "Text" }

// CreateControls materializes the text field for the given cell.
func (Text) CreateControls(host edit.Host, prop model.Property, x, y, w, h int) edit.ControlSet {
	field := widget.NewTextField(host.AllocateControlID(), util.NewRect(x, y, w, h), host.Stylesheet().Editor)
	return edit.ControlSet{Primary: field}
}

// UpdateControl pushes the property's value into the field.
func (e Text) UpdateControl(prop model.Property, cs edit.ControlSet) {
	if prop.IsUnspecified() {
		e.SetValueToUnspecified(prop, cs)
		return
	}
	field, ok := cs.Primary.(*widget.TextField)
	if !ok {
		log.Warn().Msg("text editor given a non-text-field control (likely logic error)")
		return
	}
	field.SetText(prop.ValueString())
}

// OnEvent lets the field process key input and reports whether its contents
// now differ from the property's value.
func (e Text) OnEvent(host edit.Host, prop model.Property, primary widget.Control, ev edit.Event) bool {
	keyEvent, ok := ev.(edit.KeyEvent)
	if !ok {
		return false
	}
	if !primary.HandleKey(keyEvent.Key) {
		return false
	}
	var pending model.Value
	return e.GetValueFromControl(&pending, prop, host.ActiveControls())
}

// GetValueFromControl converts the field's contents via the property and
// reports whether the result differs from the property's value.
func (Text) GetValueFromControl(out *model.Value, prop model.Property, cs edit.ControlSet) bool {
	field, ok := cs.Primary.(*widget.TextField)
	if !ok {
		log.Warn().Msg("text editor given a non-text-field control (likely logic error)")
		return false
	}

	text := field.Text()
	if text == "" {
		*out = model.UnspecifiedValue()
		return !prop.IsUnspecified()
	}

	value, err := prop.StringToValue(text)
	if err != nil {
		log.Debug().Msgf("control contents not convertible for '%s' (%s)", prop.Name(), err.Error())
		return false
	}
	*out = value
	return prop.IsUnspecified() || !value.Equal(prop.Value())
}

// SetValueToUnspecified blanks the field.
func (Text) SetValueToUnspecified(prop model.Property, cs edit.ControlSet) {
	if field, ok := cs.Primary.(*widget.TextField); ok {
		field.Clear()
	}
}

// SetControlStringValue sets the field's contents directly.
func (Text) SetControlStringValue(cs edit.ControlSet, s string) {
	if field, ok := cs.Primary.(*widget.TextField); ok {
		field.SetText(s)
	}
}

// OnFocus marks the field's contents for replacement, so typing starts fresh.
func (Text) OnFocus(prop model.Property, ctrl widget.Control) {
	if field, ok := ctrl.(*widget.TextField); ok {
		field.SelectAll()
	}
}
