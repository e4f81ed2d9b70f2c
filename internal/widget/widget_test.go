package widget_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/util"
	"github.com/ja-he/propgrid/internal/widget"
)

var testStyle = styling.StyleFromHex("#000000", "#ffffff")

func runeKey(r rune) input.Key { return input.Key{Key: tcell.KeyRune, Ch: r} }

func TestTextField(t *testing.T) {
	t.Run("typing appends at the cursor", func(t *testing.T) {
		f := widget.NewTextField(0, util.NewRect(0, 0, 10, 1), testStyle)
		for _, r := range "abc" {
			f.HandleKey(runeKey(r))
		}
		if f.Text() != "abc" {
			t.Errorf("expected 'abc', got '%s'", f.Text())
		}
		if f.CursorPos() != 3 {
			t.Errorf("expected cursor at 3, got %d", f.CursorPos())
		}
	})
	t.Run("select all makes the next rune replace everything", func(t *testing.T) {
		f := widget.NewTextField(0, util.NewRect(0, 0, 10, 1), testStyle)
		f.SetText("initial")
		f.SelectAll()
		f.HandleKey(runeKey('x'))
		if f.Text() != "x" {
			t.Errorf("expected 'x', got '%s'", f.Text())
		}
	})
	t.Run("select all is defused by cursor movement", func(t *testing.T) {
		f := widget.NewTextField(0, util.NewRect(0, 0, 10, 1), testStyle)
		f.SetText("ab")
		f.SelectAll()
		f.HandleKey(input.Key{Key: tcell.KeyLeft})
		f.HandleKey(runeKey('x'))
		if f.Text() != "axb" {
			t.Errorf("expected 'axb', got '%s'", f.Text())
		}
	})
	t.Run("backspace removes before the cursor", func(t *testing.T) {
		f := widget.NewTextField(0, util.NewRect(0, 0, 10, 1), testStyle)
		f.SetText("abc")
		f.HandleKey(input.Key{Key: tcell.KeyBackspace2})
		if f.Text() != "ab" {
			t.Errorf("expected 'ab', got '%s'", f.Text())
		}
	})
	t.Run("unhandled keys report false", func(t *testing.T) {
		f := widget.NewTextField(0, util.NewRect(0, 0, 10, 1), testStyle)
		if f.HandleKey(input.Key{Key: tcell.KeyF1}) {
			t.Error("expected F1 to not apply to a text field")
		}
	})
}

func TestDropDown(t *testing.T) {
	items := []string{"red", "green", "blue"}

	t.Run("selection steps without wrapping", func(t *testing.T) {
		d := widget.NewDropDown(0, util.NewRect(0, 0, 10, 1), testStyle, items)
		d.SetSelected(0)
		d.SelectPrev()
		if d.Selected() != 0 {
			t.Errorf("expected selection to stay at 0, got %d", d.Selected())
		}
		d.SelectNext()
		d.SelectNext()
		d.SelectNext()
		if d.Selected() != 2 {
			t.Errorf("expected selection to cap at 2, got %d", d.Selected())
		}
	})
	t.Run("out-of-range selection clears", func(t *testing.T) {
		d := widget.NewDropDown(0, util.NewRect(0, 0, 10, 1), testStyle, items)
		d.SetSelected(17)
		if d.Selected() != -1 {
			t.Errorf("expected no selection, got %d", d.Selected())
		}
	})
	t.Run("insertion adjusts the selection", func(t *testing.T) {
		d := widget.NewDropDown(0, util.NewRect(0, 0, 10, 1), testStyle, items)
		d.SetSelected(1)
		index := d.InsertItem("cyan", 0)
		if index != 0 {
			t.Errorf("expected insertion at 0, got %d", index)
		}
		if d.Selected() != 2 {
			t.Errorf("expected selection to shift to 2, got %d", d.Selected())
		}
	})
	t.Run("appending via negative index", func(t *testing.T) {
		d := widget.NewDropDown(0, util.NewRect(0, 0, 10, 1), testStyle, items)
		index := d.InsertItem("cyan", -1)
		if index != 3 {
			t.Errorf("expected appending at 3, got %d", index)
		}
	})
	t.Run("deleting the selected item clears the selection", func(t *testing.T) {
		d := widget.NewDropDown(0, util.NewRect(0, 0, 10, 1), testStyle, items)
		d.SetSelected(1)
		d.DeleteItem(1)
		if d.Selected() != -1 {
			t.Errorf("expected no selection, got %d", d.Selected())
		}
		if d.Count() != 2 {
			t.Errorf("expected 2 items, got %d", d.Count())
		}
	})
}

func TestCheckBox(t *testing.T) {
	c := widget.NewCheckBox(0, util.NewRect(0, 0, 3, 1), testStyle)

	t.Run("toggling flips between checked and unchecked", func(t *testing.T) {
		c.Toggle()
		if c.State() != widget.Checked {
			t.Errorf("expected checked, got %v", c.State())
		}
		c.Toggle()
		if c.State() != widget.Unchecked {
			t.Errorf("expected unchecked, got %v", c.State())
		}
	})
	t.Run("toggling leaves the indeterminate state to checked", func(t *testing.T) {
		c.SetState(widget.Indeterminate)
		c.Toggle()
		if c.State() != widget.Checked {
			t.Errorf("expected checked, got %v", c.State())
		}
	})
}

func TestSpinField(t *testing.T) {
	t.Run("stepping changes the numeric text", func(t *testing.T) {
		f := widget.NewSpinField(0, util.NewRect(0, 0, 10, 1), testStyle)
		f.SetText("5")
		f.Increment()
		if f.Text() != "6" {
			t.Errorf("expected '6', got '%s'", f.Text())
		}
		f.HandleKey(input.Key{Key: tcell.KeyDown})
		f.HandleKey(input.Key{Key: tcell.KeyDown})
		if f.Text() != "4" {
			t.Errorf("expected '4', got '%s'", f.Text())
		}
	})
	t.Run("stepping unparseable text is a no-op", func(t *testing.T) {
		f := widget.NewSpinField(0, util.NewRect(0, 0, 10, 1), testStyle)
		f.SetText("nonsense")
		f.Increment()
		if f.Text() != "nonsense" {
			t.Errorf("expected text to be unchanged, got '%s'", f.Text())
		}
	})
	t.Run("stepping an empty field starts from zero", func(t *testing.T) {
		f := widget.NewSpinField(0, util.NewRect(0, 0, 10, 1), testStyle)
		f.Decrement()
		if f.Text() != "-1" {
			t.Errorf("expected '-1', got '%s'", f.Text())
		}
	})
}

func TestDateField(t *testing.T) {
	t.Run("stepping crosses month boundaries", func(t *testing.T) {
		f := widget.NewDateField(0, util.NewRect(0, 0, 12, 1), testStyle)
		f.SetText("2021-01-31")
		f.HandleKey(input.Key{Key: tcell.KeyUp})
		if f.Text() != "2021-02-01" {
			t.Errorf("expected '2021-02-01', got '%s'", f.Text())
		}
		f.PrevDay()
		if f.Text() != "2021-01-31" {
			t.Errorf("expected '2021-01-31', got '%s'", f.Text())
		}
	})
	t.Run("stepping unparseable text is a no-op", func(t *testing.T) {
		f := widget.NewDateField(0, util.NewRect(0, 0, 12, 1), testStyle)
		f.SetText("whenever")
		f.NextDay()
		if f.Text() != "whenever" {
			t.Errorf("expected text to be unchanged, got '%s'", f.Text())
		}
	})
}

func TestMultiButton(t *testing.T) {
	t.Run("generated identities are negative and pairwise distinct", func(t *testing.T) {
		m := widget.NewMultiButton(0, util.NewRect(0, 0, 40, 1), testStyle)
		a := m.Add("...")
		b := m.AddGlyph('x')
		c := m.Add("?")
		if a >= 0 || b >= 0 || c >= 0 {
			t.Errorf("expected negative identities, got %d, %d, %d", a, b, c)
		}
		if a == b || b == c || a == c {
			t.Errorf("expected distinct identities, got %d, %d, %d", a, b, c)
		}
		if m.Count() != 3 {
			t.Errorf("expected 3 buttons, got %d", m.Count())
		}
	})
	t.Run("explicit identities are honored", func(t *testing.T) {
		m := widget.NewMultiButton(0, util.NewRect(0, 0, 40, 1), testStyle)
		m.AddWithID("del", -100)
		m.AddGlyphWithID('+', -101)
		if m.ButtonID(0) != -100 || m.ButtonID(1) != -101 {
			t.Errorf("expected identities -100 and -101, got %d and %d", m.ButtonID(0), m.ButtonID(1))
		}
	})
	t.Run("primary size shrinks by the button cluster", func(t *testing.T) {
		m := widget.NewMultiButton(0, util.NewRect(0, 0, 40, 1), testStyle)
		m.Add("...")
		m.AddGlyph('x')
		w, h := m.PrimarySize()
		if w != 40-(3+2)-(1+2) {
			t.Errorf("expected primary width %d, got %d", 40-(3+2)-(1+2), w)
		}
		if h != 1 {
			t.Errorf("expected primary height 1, got %d", h)
		}
	})
	t.Run("with zero buttons the primary gets the full cell", func(t *testing.T) {
		m := widget.NewMultiButton(0, util.NewRect(0, 0, 40, 1), testStyle)
		w, _ := m.PrimarySize()
		if w != 40 {
			t.Errorf("expected primary width 40, got %d", w)
		}
		m.FinalizePosition(5, 2)
		x, y, _, _ := m.Box()
		if x != 5 || y != 2 {
			t.Errorf("expected cell at (5,2), got (%d,%d)", x, y)
		}
	})
	t.Run("finalizing right-aligns the cluster", func(t *testing.T) {
		m := widget.NewMultiButton(0, util.NewRect(0, 0, 40, 1), testStyle)
		m.Add("...")
		m.AddGlyph('x')
		m.FinalizePosition(10, 0)
		lastX, _, lastW, _ := m.Button(1).Box()
		if lastX+lastW != 10+40 {
			t.Errorf("expected cluster right edge at %d, got %d", 10+40, lastX+lastW)
		}
		firstX, _, firstW, _ := m.Button(0).Box()
		if firstX+firstW != lastX {
			t.Errorf("expected buttons to abut, got first ending at %d and last starting at %d", firstX+firstW, lastX)
		}
	})
	t.Run("out-of-range button access panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic on out-of-range access")
			}
		}()
		m := widget.NewMultiButton(0, util.NewRect(0, 0, 40, 1), testStyle)
		m.Button(0)
	})
}
