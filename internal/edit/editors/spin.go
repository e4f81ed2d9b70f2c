package editors

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/propgrid/internal/edit"
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/util"
	"github.com/ja-he/propgrid/internal/widget"
)

// Spin edits a numeric property through a text field that additionally steps
// its value on up and down keys.
type Spin struct {
	edit.BaseEditor
}

// GetName returns this editor's registry name.
func (Spin) GetName() string { return "Spin" }

// CreateControls materializes the spinnable field for the given cell.
func (Spin) CreateControls(host edit.Host, prop model.Property, x, y, w, h int) edit.ControlSet {
	field := widget.NewSpinField(host.AllocateControlID(), util.NewRect(x, y, w, h), host.Stylesheet().Editor)
	return edit.ControlSet{Primary: field}
}

// UpdateControl pushes the property's value into the field.
func (e Spin) UpdateControl(prop model.Property, cs edit.ControlSet) {
	if prop.IsUnspecified() {
		e.SetValueToUnspecified(prop, cs)
		return
	}
	field, ok := cs.Primary.(*widget.SpinField)
	if !ok {
		log.Warn().Msg("spin editor given a non-spin-field control (likely logic error)")
		return
	}
	field.SetText(prop.ValueString())
}

// OnEvent lets the field process key input (up and down step the value) and
// reports whether its contents now differ from the property's value.
func (e Spin) OnEvent(host edit.Host, prop model.Property, primary widget.Control, ev edit.Event) bool {
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
func (Spin) GetValueFromControl(out *model.Value, prop model.Property, cs edit.ControlSet) bool {
	field, ok := cs.Primary.(*widget.SpinField)
	if !ok {
		log.Warn().Msg("spin editor given a non-spin-field control (likely logic error)")
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
func (Spin) SetValueToUnspecified(prop model.Property, cs edit.ControlSet) {
	if field, ok := cs.Primary.(*widget.SpinField); ok {
		field.Clear()
	}
}

// SetControlStringValue sets the field's contents directly.
func (Spin) SetControlStringValue(cs edit.ControlSet, s string) {
	if field, ok := cs.Primary.(*widget.SpinField); ok {
		field.SetText(s)
	}
}

// SetControlIntValue sets the field's contents to the given number.
func (Spin) SetControlIntValue(cs edit.ControlSet, v int) {
	if field, ok := cs.Primary.(*widget.SpinField); ok {
		field.SetText(strconv.Itoa(v))
	}
}

// OnFocus marks the field's contents for replacement, so typing starts fresh.
func (Spin) OnFocus(prop model.Property, ctrl widget.Control) {
	if field, ok := ctrl.(*widget.SpinField); ok {
		field.SelectAll()
	}
}
