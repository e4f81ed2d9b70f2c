package panes

import (
	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, and routing input to the focussed subpane.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	gridPane   ui.Pane
	statusPane ui.Pane
	helpPane   ui.Pane

	inputProcessor input.ModalInputProcessor
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// IsVisible indicates that the root is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws this pane, i.E. performs a full render cycle.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	p.gridPane.Draw()
	p.statusPane.Draw()
	if p.helpPane.IsVisible() {
		p.helpPane.Draw()
	}

	// After all drawing draw or hide the cursor, depending on what is
	// requested during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
}

// Undraw clears the screen.
func (p *RootPane) Undraw() {
	p.renderer.Clear()
	p.gridPane.Undraw()
	p.statusPane.Undraw()
	p.helpPane.Undraw()
	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	if p.focussedPane().CapturesInput() {
		return true
	}
	return p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpane.
func (p *RootPane) ProcessInput(key input.Key) bool {
	if p.inputProcessor.CapturesInput() {
		return p.inputProcessor.ProcessInput(key)
	}
	if p.focussedPane().CapturesInput() {
		return p.focussedPane().ProcessInput(key)
	}
	if p.focussedPane().ProcessInput(key) {
		return true
	}
	return p.inputProcessor.ProcessInput(key)
}

func (p *RootPane) focussedPane() ui.Pane {
	if p.helpPane.IsVisible() {
		return p.helpPane
	}
	return p.gridPane
}

// Identify returns the pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// HasFocus indicates that the root always has focus.
func (p *RootPane) HasFocus() bool { return true }

// Focusses returns the ID of the focussed subpane.
func (p *RootPane) Focusses() ui.PaneID { return p.focussedPane().Identify() }

// FocusPrev does nothing.
func (p *RootPane) FocusPrev() {}

// FocusNext does nothing.
func (p *RootPane) FocusNext() {}

// SetParent panics; the root has no parent.
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed
func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *RootPane) PopModalOverlays(index uint) {
	p.inputProcessor.PopModalOverlays(index)
}

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}

	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	for k, v := range p.focussedPane().GetHelp() {
		result[k] = v
	}

	return result
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	inputProcessor input.ModalInputProcessor,
	gridPane ui.Pane,
	statusPane ui.Pane,
	helpPane ui.Pane,
) *RootPane {
	root := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		gridPane:       gridPane,
		statusPane:     statusPane,
		helpPane:       helpPane,
		inputProcessor: inputProcessor,
	}
	gridPane.SetParent(root)
	statusPane.SetParent(root)
	helpPane.SetParent(root)
	return root
}
