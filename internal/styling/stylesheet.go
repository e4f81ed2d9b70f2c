package styling

import (
	"github.com/ja-he/propgrid/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling

	RowLabel    DrawStyling
	RowValue    DrawStyling
	RowSelected DrawStyling

	Unspecified DrawStyling

	Editor DrawStyling
	Button DrawStyling

	Status DrawStyling
	Help   DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(cfg config.Stylesheet) *Stylesheet {
	return &Stylesheet{
		Normal:      StyleFromConfig(cfg.Normal),
		RowLabel:    StyleFromConfig(cfg.RowLabel),
		RowValue:    StyleFromConfig(cfg.RowValue),
		RowSelected: StyleFromConfig(cfg.RowSelected),
		Unspecified: StyleFromConfig(cfg.Unspecified),
		Editor:      StyleFromConfig(cfg.Editor),
		Button:      StyleFromConfig(cfg.Button),
		Status:      StyleFromConfig(cfg.Status),
		Help:        StyleFromConfig(cfg.Help),
	}
}

// StyleFromConfig converts a config styling to a DrawStyling.
func StyleFromConfig(cfg config.Styling) DrawStyling {
	style := StyleFromHex(cfg.Fg, cfg.Bg)
	result := DrawStyling(style)
	if cfg.Style != nil {
		if cfg.Style.Bold {
			result = result.Bolded()
		}
		if cfg.Style.Italic {
			result = result.Italicized()
		}
		if cfg.Style.Underlined {
			result = result.Underlined()
		}
	}
	return result
}
