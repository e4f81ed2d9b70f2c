package widget

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/util"
)

// SpinField is a text field for integers that can additionally be stepped up
// and down.
//
// Stepping only applies while the field's text parses as an integer; an empty
// field steps from zero.
type SpinField struct {
	TextField

	step int
}

// NewSpinField constructs a spin field with the given identity, dimensions,
// and style, stepping by 1.
func NewSpinField(id int, box util.Rect, style styling.DrawStyling) *SpinField {
	return &SpinField{
		TextField: *NewTextField(id, box, style),
		step:      1,
	}
}

// Increment steps the field's value up.
func (f *SpinField) Increment() { f.stepBy(f.step) }

// Decrement steps the field's value down.
func (f *SpinField) Decrement() { f.stepBy(-f.step) }

func (f *SpinField) stepBy(delta int) {
	text := f.Text()
	value := 0
	if text != "" {
		parsed, err := strconv.Atoi(text)
		if err != nil {
			return
		}
		value = parsed
	}
	f.SetText(strconv.Itoa(value + delta))
}

// HandleKey lets this field process a key input directed at it.
// Up and down step the value; all other input behaves as for a TextField.
func (f *SpinField) HandleKey(k input.Key) bool {
	switch k.Key {
	case tcell.KeyUp:
		f.Increment()
		return true
	case tcell.KeyDown:
		f.Decrement()
		return true
	default:
		return f.TextField.HandleKey(k)
	}
}
