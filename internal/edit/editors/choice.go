package editors

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propgrid/internal/edit"
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/util"
	"github.com/ja-he/propgrid/internal/widget"
)

// choicesProvider is what a property must offer for the Choice editor to be
// attachable to it.
type choicesProvider interface {
	Choices() []string
}

// Choice edits a property through a dropdown over the property's choices,
// round-tripping via the property's integer conversion (the selection index).
// No selection reads as the unspecified value.
type Choice struct {
	edit.BaseEditor
}

// GetName returns this editor's registry name.
func (Choice) GetName() string { return "Choice" }

// CreateControls materializes the dropdown for the given cell.
// The property has to provide choices; otherwise no controls are created.
func (Choice) CreateControls(host edit.Host, prop model.Property, x, y, w, h int) edit.ControlSet {
	provider, ok := prop.(choicesProvider)
	if !ok {
		log.Warn().Msgf("choice editor attached to property '%s' which offers no choices", prop.Name())
		return edit.ControlSet{}
	}
	dropdown := widget.NewDropDown(host.AllocateControlID(), util.NewRect(x, y, w, h), host.Stylesheet().Editor, provider.Choices())
	return edit.ControlSet{Primary: dropdown}
}

// UpdateControl pushes the property's selection into the dropdown.
func (e Choice) UpdateControl(prop model.Property, cs edit.ControlSet) {
	if prop.IsUnspecified() {
		e.SetValueToUnspecified(prop, cs)
		return
	}
	dropdown, ok := cs.Primary.(*widget.DropDown)
	if !ok {
		log.Warn().Msg("choice editor given a non-dropdown control (likely logic error)")
		return
	}
	dropdown.SetSelected(prop.ValueInt())
}

// OnEvent lets the dropdown process key input and reports whether its
// selection now differs from the property's value.
func (e Choice) OnEvent(host edit.Host, prop model.Property, primary widget.Control, ev edit.Event) bool {
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

// GetValueFromControl converts the dropdown's selection index via the
// property and reports whether the result differs from the property's value.
func (Choice) GetValueFromControl(out *model.Value, prop model.Property, cs edit.ControlSet) bool {
	dropdown, ok := cs.Primary.(*widget.DropDown)
	if !ok {
		log.Warn().Msg("choice editor given a non-dropdown control (likely logic error)")
		return false
	}

	selected := dropdown.Selected()
	if selected < 0 {
		*out = model.UnspecifiedValue()
		return !prop.IsUnspecified()
	}

	value, err := prop.IntToValue(selected)
	if err != nil {
		log.Debug().Msgf("selection not convertible for '%s' (%s)", prop.Name(), err.Error())
		return false
	}
	*out = value
	return prop.IsUnspecified() || !value.Equal(prop.Value())
}

// SetValueToUnspecified clears the dropdown's selection.
func (Choice) SetValueToUnspecified(prop model.Property, cs edit.ControlSet) {
	if dropdown, ok := cs.Primary.(*widget.DropDown); ok {
		dropdown.ClearSelection()
	}
}

// SetControlIntValue sets the dropdown's selection directly.
func (Choice) SetControlIntValue(cs edit.ControlSet, v int) {
	if dropdown, ok := cs.Primary.(*widget.DropDown); ok {
		dropdown.SetSelected(v)
	}
}

// InsertItem inserts a choice into the dropdown and returns its index.
func (Choice) InsertItem(ctrl widget.Control, label string, index int) int {
	dropdown, ok := ctrl.(*widget.DropDown)
	if !ok {
		return -1
	}
	return dropdown.InsertItem(label, index)
}

// DeleteItem removes a choice from the dropdown.
func (Choice) DeleteItem(ctrl widget.Control, index int) {
	if dropdown, ok := ctrl.(*widget.DropDown); ok {
		dropdown.DeleteItem(index)
	}
}
