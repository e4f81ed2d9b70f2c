package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
)

// DropDown is a control selecting one of an ordered list of labeled items.
//
// A selection index of -1 represents "nothing selected".
type DropDown struct {
	BaseControl

	items    []string
	selected int
}

// NewDropDown constructs a dropdown over the given items with the given
// identity, dimensions, and style, with nothing selected.
func NewDropDown(id int, box util.Rect, style styling.DrawStyling, items []string) *DropDown {
	return &DropDown{
		BaseControl: NewBaseControl(id, box, style),
		items:       append([]string(nil), items...),
		selected:    -1,
	}
}

// Items returns the current items.
func (d *DropDown) Items() []string { return d.items }

// Count returns the number of items.
func (d *DropDown) Count() int { return len(d.items) }

// Selected returns the current selection index (-1 for none).
func (d *DropDown) Selected() int { return d.selected }

// SetSelected sets the selection index; out-of-range indices clear the
// selection.
func (d *DropDown) SetSelected(index int) {
	if index < 0 || index >= len(d.items) {
		d.selected = -1
		return
	}
	d.selected = index
}

// ClearSelection clears the selection.
func (d *DropDown) ClearSelection() { d.selected = -1 }

// SelectNext moves the selection down the list (entering it at the top from
// no selection), stopping at the last item.
func (d *DropDown) SelectNext() {
	if len(d.items) == 0 {
		return
	}
	if d.selected < len(d.items)-1 {
		d.selected++
	}
}

// SelectPrev moves the selection up the list, stopping at the first item.
func (d *DropDown) SelectPrev() {
	if len(d.items) == 0 {
		return
	}
	if d.selected > 0 {
		d.selected--
	}
}

// InsertItem inserts an item at the given index (-1 meaning append) and
// returns the index it was inserted at.
func (d *DropDown) InsertItem(label string, index int) int {
	if index < 0 || index > len(d.items) {
		index = len(d.items)
	}
	d.items = append(d.items, "")
	copy(d.items[index+1:], d.items[index:])
	d.items[index] = label
	if d.selected >= index {
		d.selected++
	}
	return index
}

// DeleteItem removes the item at the given index; out-of-range indices are
// ignored.
func (d *DropDown) DeleteItem(index int) {
	if index < 0 || index >= len(d.items) {
		return
	}
	d.items = append(d.items[:index], d.items[index+1:]...)
	switch {
	case d.selected == index:
		d.selected = -1
	case d.selected > index:
		d.selected--
	}
}

// HandleKey lets this dropdown process a key input directed at it.
func (d *DropDown) HandleKey(k input.Key) bool {
	switch k.Key {
	case tcell.KeyUp:
		d.SelectPrev()
		return true
	case tcell.KeyDown:
		d.SelectNext()
		return true
	default:
		return false
	}
}

// Draw draws this dropdown via the given renderer.
func (d *DropDown) Draw(r ui.Renderer, focussed bool) {
	x, y, w, h := d.Box()

	style := d.Style()
	if focussed {
		style = style.DefaultEmphasized()
	}
	r.DrawBox(x, y, w, h, style)

	label := ""
	if d.selected >= 0 {
		label = d.items[d.selected]
	}
	r.DrawText(x, y, w-2, h, style, util.TruncateAt(label, w-2))
	if w >= 1 {
		r.DrawText(x+w-1, y, 1, 1, style, "v")
	}
}
