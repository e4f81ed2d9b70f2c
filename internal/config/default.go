package config

// ColorschemeType enumerates the types of colorscheme a default config can be
// generated for.
type ColorschemeType int

const (
	_ ColorschemeType = iota
	// Light is a colorscheme for light terminal backgrounds.
	Light
	// Dark is a colorscheme for dark terminal backgrounds.
	Dark
)

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Keys:       defaultKeyBindings(),
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:      Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			RowLabel:    Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
			RowValue:    Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			RowSelected: Styling{Fg: "#000000", Bg: "#ffdccc", Style: &FontStyle{Bold: true}},
			Unspecified: Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{Italic: true}},
			Editor:      Styling{Fg: "#ffffff", Bg: "#606060", Style: &FontStyle{}},
			Button:      Styling{Fg: "#000000", Bg: "#c0c0c0", Style: &FontStyle{}},
			Status:      Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			Help:        Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:      Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		RowLabel:    Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		RowValue:    Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		RowSelected: Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
		Unspecified: Styling{Fg: "#808080", Bg: "#ffffff", Style: &FontStyle{Italic: true}},
		Editor:      Styling{Fg: "#000000", Bg: "#fff0cc", Style: &FontStyle{}},
		Button:      Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		Status:      Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		Help:        Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
	}
}

func defaultKeyBindings() KeyBindings {
	return KeyBindings{
		Grid: map[string]string{
			"j":      "next-row",
			"k":      "prev-row",
			"<cr>":   "begin-edit",
			"i":      "begin-edit",
			"u":      "set-unspecified",
			"q":      "quit",
			"<c-c>":  "quit",
			"?":      "toggle-help",
			"<esc>":  "quit",
			"<left>": "prev-row",
		},
		Session: map[string]string{
			"<cr>":  "commit",
			"<esc>": "cancel",
			"<c-f>": "press-button-1",
			"<c-g>": "press-button-2",
		},
	}
}
