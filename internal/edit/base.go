package edit

import (
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
	"github.com/ja-he/propgrid/internal/widget"
)

// BaseEditor provides the default behavior of an editor's optional
// operations. Concrete editors embed it and implement the rest.
type BaseEditor struct{}

// DrawValue draws the given value text plainly into the cell.
func (BaseEditor) DrawValue(r ui.Renderer, x, y, w, h int, style styling.DrawStyling, prop model.Property, text string) {
	r.DrawText(x, y, w, h, style, util.TruncateAt(text, w))
}

// SetControlStringValue does nothing.
func (BaseEditor) SetControlStringValue(cs ControlSet, s string) {}

// SetControlIntValue does nothing.
func (BaseEditor) SetControlIntValue(cs ControlSet, v int) {}

// InsertItem returns -1; the default editor is not list-like.
func (BaseEditor) InsertItem(ctrl widget.Control, label string, index int) int { return -1 }

// DeleteItem does nothing.
func (BaseEditor) DeleteItem(ctrl widget.Control, index int) {}

// OnFocus does nothing.
func (BaseEditor) OnFocus(prop model.Property, ctrl widget.Control) {}

// CanContainCustomImage returns false.
func (BaseEditor) CanContainCustomImage() bool { return false }
