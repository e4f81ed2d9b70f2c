// Package panes provides the concrete UI panes of the application: the grid
// pane, the status bar, the help popup, and the root pane composing them.
package panes

import (
	"github.com/google/uuid"

	"github.com/ja-he/propgrid/internal/grid"
	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
)

// GridPane visualizes a property grid and, while a row is being edited, the
// editor's live controls within it.
type GridPane struct {
	ui.LeafPane

	grid *grid.Grid

	cursorController ui.CursorLocationRequestHandler

	idStr string
}

// Draw draws this pane.
func (p *GridPane) Draw() {
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	p.grid.SetBox(util.NewRect(x, y, w, h))
	p.grid.Draw(p.Renderer)

	if loc := p.grid.ActiveTextCursor(); loc != nil {
		p.cursorController.Put(*loc, p.idStr)
	} else {
		p.cursorController.Delete(p.idStr)
	}
}

// Undraw ensures that the cursor is hidden.
func (p *GridPane) Undraw() {
	p.cursorController.Delete(p.idStr)
}

// NewGridPane constructs and returns a new GridPane.
func NewGridPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	inputProcessor input.ModalInputProcessor,
	g *grid.Grid,
	cursorController ui.CursorLocationRequestHandler,
) *GridPane {
	return &GridPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		grid:             g,
		cursorController: cursorController,
		idStr:            "grid-pane-" + uuid.Must(uuid.NewRandom()).String(),
	}
}
