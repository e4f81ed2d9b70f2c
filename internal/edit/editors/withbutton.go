package editors

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propgrid/internal/edit"
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/util"
	"github.com/ja-he/propgrid/internal/widget"
)

// TextAndButton is the Text editor with an auxiliary "..." button next to
// the field. Clicking the button marks the field for replacement; it does not
// change the value by itself.
type TextAndButton struct {
	Text
}

// GetName returns this editor's registry name.
func (TextAndButton) GetName() string { return "TextAndButton" }

// CreateControls materializes the text field and the button cluster for the
// given cell, the field getting the width the cluster leaves over.
func (TextAndButton) CreateControls(host edit.Host, prop model.Property, x, y, w, h int) edit.ControlSet {
	styles := host.Stylesheet()

	buttons := widget.NewMultiButton(host.AllocateControlID(), util.NewRect(x, y, w, h), styles.Button)
	buttons.Add("...")
	buttons.FinalizePosition(x, y)

	primaryW, primaryH := buttons.PrimarySize()
	field := widget.NewTextField(host.AllocateControlID(), util.NewRect(x, y, primaryW, primaryH), styles.Editor)

	return edit.ControlSet{Primary: field, Secondary: buttons}
}

// OnEvent routes button clicks by identity and delegates key input to the
// text behavior.
func (e TextAndButton) OnEvent(host edit.Host, prop model.Property, primary widget.Control, ev edit.Event) bool {
	click, isClick := ev.(edit.ButtonClick)
	if !isClick {
		return e.Text.OnEvent(host, prop, primary, ev)
	}

	buttons, ok := host.ActiveControls().Secondary.(*widget.MultiButton)
	if !ok {
		log.Warn().Msg("text-and-button editor without a button cluster (likely logic error)")
		return false
	}
	if buttons.Count() > 0 && click.ButtonID == buttons.ButtonID(0) {
		e.OnFocus(prop, primary)
	}
	return false
}

// ChoiceAndButton is the Choice editor with an auxiliary button that cycles
// the selection through the property's choices. Clicking it does change the
// value.
type ChoiceAndButton struct {
	Choice
}

// GetName returns this editor's registry name.
func (ChoiceAndButton) GetName() string { return "ChoiceAndButton" }

// CreateControls materializes the dropdown and the button cluster for the
// given cell, the dropdown getting the width the cluster leaves over.
func (ChoiceAndButton) CreateControls(host edit.Host, prop model.Property, x, y, w, h int) edit.ControlSet {
	provider, ok := prop.(choicesProvider)
	if !ok {
		log.Warn().Msgf("choice editor attached to property '%s' which offers no choices", prop.Name())
		return edit.ControlSet{}
	}
	styles := host.Stylesheet()

	buttons := widget.NewMultiButton(host.AllocateControlID(), util.NewRect(x, y, w, h), styles.Button)
	buttons.AddGlyph('>')
	buttons.FinalizePosition(x, y)

	primaryW, primaryH := buttons.PrimarySize()
	dropdown := widget.NewDropDown(host.AllocateControlID(), util.NewRect(x, y, primaryW, primaryH), styles.Editor, provider.Choices())

	return edit.ControlSet{Primary: dropdown, Secondary: buttons}
}

// OnEvent routes button clicks by identity (the cycle button advances the
// selection, wrapping) and delegates key input to the choice behavior.
func (e ChoiceAndButton) OnEvent(host edit.Host, prop model.Property, primary widget.Control, ev edit.Event) bool {
	click, isClick := ev.(edit.ButtonClick)
	if !isClick {
		return e.Choice.OnEvent(host, prop, primary, ev)
	}

	controls := host.ActiveControls()
	buttons, ok := controls.Secondary.(*widget.MultiButton)
	if !ok {
		log.Warn().Msg("choice-and-button editor without a button cluster (likely logic error)")
		return false
	}
	if buttons.Count() == 0 || click.ButtonID != buttons.ButtonID(0) {
		return false
	}

	dropdown, ok := primary.(*widget.DropDown)
	if !ok {
		log.Warn().Msg("choice editor given a non-dropdown control (likely logic error)")
		return false
	}
	if dropdown.Count() == 0 {
		return false
	}
	dropdown.SetSelected((dropdown.Selected() + 1) % dropdown.Count())

	var pending model.Value
	return e.GetValueFromControl(&pending, prop, controls)
}
