package panes

import (
	"fmt"

	"github.com/ja-he/propgrid/internal/grid"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
)

// StatusPane is a status bar that displays the selected row and whether an
// edit session is active.
type StatusPane struct {
	ui.LeafPane

	grid *grid.Grid
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	rows := p.grid.Rows()
	if len(rows) > 0 {
		position := fmt.Sprintf("%s (%d/%d)", rows[p.grid.SelectedRow()].Label, p.grid.SelectedRow()+1, len(rows))
		p.Renderer.DrawText(x+1, y, w-2, 1, bgStyle.DefaultEmphasized(), util.TruncateAt(position, w-2))
	}

	modeStr := "-- NORMAL --"
	if p.grid.Editing() {
		modeStr = "-- EDITING --"
	}
	p.Renderer.DrawText(x+w-len(modeStr)-2, y+h-1, len(modeStr), 1, bgStyle.DefaultEmphasized().Italicized(), modeStr)
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	g *grid.Grid,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		grid: g,
	}
}
