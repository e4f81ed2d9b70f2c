// Package grid provides the property grid: rows of named properties, each
// with an attachable in-place editor, and the edit-session state machine
// driving those editors.
package grid

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/propgrid/internal/edit"
	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
	"github.com/ja-he/propgrid/internal/widget"
)

// Row is one line of the grid: a labelled property and the name of the
// editor to attach to it.
type Row struct {
	Label      string
	Property   model.Property
	EditorName string
}

// session is the state of the one row currently being edited.
type session struct {
	rowIndex int
	editor   edit.Editor
	controls edit.ControlSet
}

// Grid is a property grid and the host of its editors (it hands out control
// identities, styles, and the active controls).
//
// At most one row is being edited at any time. Editor controls strictly live
// between BeginEdit and EndEdit or CancelEdit; no editor is consulted about
// controls outside that window.
type Grid struct {
	registry *edit.Registry
	styles   styling.Stylesheet

	rows     []*Row
	selected int

	box util.Rect

	nextControlID int

	active *session
}

// NewGrid constructs a grid over the given rows, resolving editors from the
// given registry.
func NewGrid(registry *edit.Registry, styles styling.Stylesheet, rows []*Row) *Grid {
	return &Grid{
		registry: registry,
		styles:   styles,
		rows:     rows,
	}
}

// AllocateControlID hands out a fresh nonnegative control identity.
func (g *Grid) AllocateControlID() int {
	id := g.nextControlID
	g.nextControlID++
	return id
}

// Stylesheet returns the styles controls are to be drawn in.
func (g *Grid) Stylesheet() styling.Stylesheet { return g.styles }

// ActiveControls returns the controls of the current edit session, or an
// invalid set if no row is being edited.
func (g *Grid) ActiveControls() edit.ControlSet {
	if g.active == nil {
		return edit.ControlSet{}
	}
	return g.active.controls
}

// Rows returns the grid's rows.
func (g *Grid) Rows() []*Row { return g.rows }

// SelectedRow returns the index of the selected row.
func (g *Grid) SelectedRow() int { return g.selected }

// SelectNextRow moves the selection down one row, if there is one.
func (g *Grid) SelectNextRow() {
	if g.selected < len(g.rows)-1 {
		g.selected++
	}
}

// SelectPrevRow moves the selection up one row, if there is one.
func (g *Grid) SelectPrevRow() {
	if g.selected > 0 {
		g.selected--
	}
}

// Editing returns whether a row is currently being edited.
func (g *Grid) Editing() bool { return g.active != nil }

// SetBox informs the grid of the screen estate it is drawn into, which is
// where editor controls are placed.
func (g *Grid) SetBox(box util.Rect) { g.box = box }

func (g *Grid) labelWidth() int {
	widest := 0
	for _, row := range g.rows {
		if l := len([]rune(row.Label)); l > widest {
			widest = l
		}
	}
	return widest + 2
}

// valueCell returns the cell a row's value occupies.
func (g *Grid) valueCell(rowIndex int) util.Rect {
	labelW := g.labelWidth()
	return util.Rect{
		X: g.box.X + labelW,
		Y: g.box.Y + rowIndex,
		W: g.box.W - labelW,
		H: 1,
	}
}

// BeginEdit starts an edit session on the selected row: it resolves the
// row's editor, has it materialize its controls in the row's value cell, and
// synchronizes them to the property.
func (g *Grid) BeginEdit() error {
	if g.active != nil {
		return fmt.Errorf("cannot begin edit, a row is already being edited")
	}
	if len(g.rows) == 0 {
		return fmt.Errorf("cannot begin edit on an empty grid")
	}

	row := g.rows[g.selected]
	editor, err := g.registry.Resolve(row.EditorName)
	if err != nil {
		return fmt.Errorf("cannot begin edit on row '%s' (%w)", row.Label, err)
	}

	cell := g.valueCell(g.selected)
	controls := editor.CreateControls(g, row.Property, cell.X, cell.Y, cell.W, cell.H)
	if !controls.Valid() {
		return fmt.Errorf("editor '%s' could not create controls for row '%s'", row.EditorName, row.Label)
	}

	g.active = &session{
		rowIndex: g.selected,
		editor:   editor,
		controls: controls,
	}
	editor.UpdateControl(row.Property, controls)
	editor.OnFocus(row.Property, controls.Primary)
	return nil
}

// HandleEditKey routes a key to the active editor and commits any change the
// editor reports.
// Returns whether the key applied.
func (g *Grid) HandleEditKey(k input.Key) bool {
	if g.active == nil {
		log.Warn().Msg("edit key handling requested without an active session (likely logic error)")
		return false
	}
	row := g.rows[g.active.rowIndex]
	changed := g.active.editor.OnEvent(g, row.Property, g.active.controls.Primary, edit.KeyEvent{Key: k})
	if changed {
		g.commit()
	}
	return changed
}

// PressButton presses the i-th auxiliary button of the active session's
// button cluster, if there is one, and commits any change the editor
// reports.
func (g *Grid) PressButton(i int) {
	if g.active == nil {
		log.Warn().Msg("button press requested without an active session (likely logic error)")
		return
	}
	buttons, ok := g.active.controls.Secondary.(*widget.MultiButton)
	if !ok || i < 0 || i >= buttons.Count() {
		return
	}
	g.PressButtonID(buttons.ButtonID(i))
}

// PressButtonID routes a click of the button with the given identity to the
// active editor and commits any change the editor reports.
func (g *Grid) PressButtonID(id int) {
	if g.active == nil {
		log.Warn().Msg("button press requested without an active session (likely logic error)")
		return
	}
	row := g.rows[g.active.rowIndex]
	if g.active.editor.OnEvent(g, row.Property, g.active.controls.Primary, edit.ButtonClick{ButtonID: id}) {
		g.commit()
	}
}

// commit reads the pending value out of the controls and, if it differs,
// into the property, then re-synchronizes the controls.
func (g *Grid) commit() {
	row := g.rows[g.active.rowIndex]
	var pending model.Value
	if !g.active.editor.GetValueFromControl(&pending, row.Property, g.active.controls) {
		return
	}
	if pending.IsUnspecified() {
		row.Property.SetUnspecified()
	} else {
		row.Property.SetValue(pending)
	}
	g.active.editor.UpdateControl(row.Property, g.active.controls)
}

// EndEdit commits any still-pending change and destroys the session's
// controls.
func (g *Grid) EndEdit() {
	if g.active == nil {
		log.Warn().Msg("edit end requested without an active session (likely logic error)")
		return
	}
	g.commit()
	g.active = nil
}

// CancelEdit destroys the session's controls without reading a value out of
// them; the property remains untouched.
func (g *Grid) CancelEdit() {
	if g.active == nil {
		log.Warn().Msg("edit cancel requested without an active session (likely logic error)")
		return
	}
	g.active = nil
}

// SetSelectedUnspecified sets the selected row's property to the unspecified
// value. It does not apply while a session is active (the session's editor
// owns the row then).
func (g *Grid) SetSelectedUnspecified() {
	if g.active != nil {
		return
	}
	if len(g.rows) == 0 {
		return
	}
	g.rows[g.selected].Property.SetUnspecified()
}

// Draw draws the grid: labels, inactive rows' values via their editors'
// DrawValue, and the active row's live controls.
func (g *Grid) Draw(r ui.Renderer) {
	labelW := g.labelWidth()

	for i, row := range g.rows {
		labelStyle := g.styles.RowLabel
		if i == g.selected {
			labelStyle = g.styles.RowSelected
		}
		r.DrawText(g.box.X, g.box.Y+i, labelW, 1, labelStyle, util.TruncateAt(row.Label, labelW))

		if g.active != nil && g.active.rowIndex == i {
			continue
		}

		cell := g.valueCell(i)
		valueStyle := g.styles.RowValue
		text := row.Property.ValueString()
		if row.Property.IsUnspecified() {
			valueStyle = g.styles.Unspecified
			text = ""
		}

		editor, err := g.registry.Resolve(row.EditorName)
		if err != nil {
			log.Warn().Msgf("row '%s' names unresolvable editor '%s'", row.Label, row.EditorName)
			r.DrawText(cell.X, cell.Y, cell.W, cell.H, valueStyle, util.TruncateAt(text, cell.W))
			continue
		}
		editor.DrawValue(r, cell.X, cell.Y, cell.W, cell.H, valueStyle, row.Property, text)
	}

	if g.active != nil {
		g.active.controls.Primary.Draw(r, true)
		if g.active.controls.Secondary != nil {
			g.active.controls.Secondary.Draw(r, false)
		}
	}
}

// ActiveTextCursor returns the screen location of the active session's text
// cursor, or nil if the session has no text-cursor-bearing control.
func (g *Grid) ActiveTextCursor() *ui.CursorLocation {
	if g.active == nil {
		return nil
	}
	positioner, ok := g.active.controls.Primary.(interface {
		CursorPos() int
	})
	if !ok {
		return nil
	}
	x, y, w, _ := g.active.controls.Primary.Box()
	pos := positioner.CursorPos()
	if pos > w-1 {
		pos = w - 1
	}
	return &ui.CursorLocation{X: x + pos, Y: y}
}
