package widget

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/util"
)

// DateField is a text field for dates ("YYYY-MM-DD") that can additionally be
// stepped by days.
//
// Stepping only applies while the field's text parses as a date.
type DateField struct {
	TextField
}

// NewDateField constructs a date field with the given identity, dimensions,
// and style.
func NewDateField(id int, box util.Rect, style styling.DrawStyling) *DateField {
	return &DateField{TextField: *NewTextField(id, box, style)}
}

// NextDay steps the field's date one day forward.
func (f *DateField) NextDay() { f.stepDays(1) }

// PrevDay steps the field's date one day back.
func (f *DateField) PrevDay() { f.stepDays(-1) }

func (f *DateField) stepDays(delta int) {
	t, err := time.Parse(model.DateLayout, f.Text())
	if err != nil {
		return
	}
	f.SetText(t.AddDate(0, 0, delta).Format(model.DateLayout))
}

// HandleKey lets this field process a key input directed at it.
// Up and down step the date by days; all other input behaves as for a
// TextField.
func (f *DateField) HandleKey(k input.Key) bool {
	switch k.Key {
	case tcell.KeyUp:
		f.NextDay()
		return true
	case tcell.KeyDown:
		f.PrevDay()
		return true
	default:
		return f.TextField.HandleKey(k)
	}
}
