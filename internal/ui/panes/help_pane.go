package panes

import (
	"sort"

	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
)

// A HelpPane is a pane that displays a help popup listing key mappings and
// their actions.
type HelpPane struct {
	ui.LeafPane

	Content input.Help
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const maxKeyWidth = 12
	const pad = 1
	keyOffset := x + border
	descriptionOffset := keyOffset + maxKeyWidth + pad

	type mapping struct{ keys, description string }
	mappings := make([]mapping, 0, len(p.Content))
	for keys, description := range p.Content {
		mappings = append(mappings, mapping{keys: keys, description: description})
	}
	sort.Slice(mappings, func(i, j int) bool { return mappings[i].description < mappings[j].description })

	for i, m := range mappings {
		p.Renderer.DrawText(keyOffset+maxKeyWidth-len([]rune(m.keys)), y+border+i, len([]rune(m.keys)), 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), m.keys)
		p.Renderer.DrawText(descriptionOffset, y+border+i, w, h, p.Stylesheet.Help.Italicized(), m.description)
	}
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
				Visible:        condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
	}
}
