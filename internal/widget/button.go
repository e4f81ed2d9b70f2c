package widget

import (
	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
)

// Button is a small clickable control rendered as "[label]".
type Button struct {
	BaseControl
	label string
}

// NewButton constructs a button with the given identity, label, and style.
// Its width follows from the label.
func NewButton(id int, label string, height int, style styling.DrawStyling) *Button {
	return &Button{
		BaseControl: NewBaseControl(id, util.Rect{X: 0, Y: 0, W: len([]rune(label)) + 2, H: height}, style),
		label:       label,
	}
}

// Label returns the button's label.
func (b *Button) Label() string { return b.label }

// HandleKey reports that a button does not process key input; it is pressed
// by identity, not by key.
func (b *Button) HandleKey(k input.Key) bool { return false }

// Draw draws this button.
func (b *Button) Draw(r ui.Renderer, focussed bool) {
	style := b.Style()
	if focussed {
		style = style.Inverted()
	}
	r.DrawText(b.box.X, b.box.Y, b.box.W, b.box.H, style, "["+b.label+"]")
}
