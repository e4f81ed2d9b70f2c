package editors_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/propgrid/internal/config"
	"github.com/ja-he/propgrid/internal/edit"
	"github.com/ja-he/propgrid/internal/edit/editors"
	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/model"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/util"
	"github.com/ja-he/propgrid/internal/widget"
)

// testHost is a minimal host for exercising editors outside a grid.
type testHost struct {
	nextID   int
	controls edit.ControlSet
	styles   styling.Stylesheet
}

func newTestHost() *testHost {
	return &testHost{
		styles: *styling.NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet),
	}
}

func (h *testHost) AllocateControlID() int {
	id := h.nextID
	h.nextID++
	return id
}
func (h *testHost) Stylesheet() styling.Stylesheet  { return h.styles }
func (h *testHost) ActiveControls() edit.ControlSet { return h.controls }

// attach creates and binds controls the way a grid would.
func attach(t *testing.T, h *testHost, e edit.Editor, prop model.Property, x, y, w, hgt int) edit.ControlSet {
	t.Helper()
	cs := e.CreateControls(h, prop, x, y, w, hgt)
	if !cs.Valid() {
		t.Fatalf("control creation for editor '%s' failed", e.GetName())
	}
	h.controls = cs
	e.UpdateControl(prop, cs)
	return cs
}

func keyEvent(k tcell.Key) edit.Event { return edit.KeyEvent{Key: input.Key{Key: k}} }
func runeEvent(r rune) edit.Event {
	return edit.KeyEvent{Key: input.Key{Key: tcell.KeyRune, Ch: r}}
}

func TestBuiltinsResolvable(t *testing.T) {
	r := edit.NewRegistry()
	editors.RegisterBuiltins(r)
	for _, name := range []string{
		"Text", "Choice", "CheckBox", "Spin", "DatePicker", "TextAndButton", "ChoiceAndButton",
	} {
		resolved, err := r.Resolve(name)
		if err != nil {
			t.Errorf("expected '%s' to be registered, got: %s", name, err.Error())
			continue
		}
		if resolved.GetName() != name {
			t.Errorf("editor resolved under '%s' names itself '%s'", name, resolved.GetName())
		}
	}
}

func TestUpdateControlRoundTripIsStable(t *testing.T) {
	for _, tc := range []struct {
		editor edit.Editor
		prop   model.Property
	}{
		{editors.Text{}, model.NewStringProperty("Name", "plain")},
		{editors.Spin{}, model.NewIntProperty("Count", 5)},
		{editors.Choice{}, model.NewEnumProperty("Color", []string{"red", "green", "blue"}, 1)},
		{editors.CheckBox{}, model.NewBoolProperty("Visible", true)},
		{editors.DatePicker{}, model.NewDateProperty("Due", time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC))},
	} {
		t.Run(tc.editor.GetName(), func(t *testing.T) {
			h := newTestHost()
			cs := attach(t, h, tc.editor, tc.prop, 0, 0, 40, 1)

			var pending model.Value
			if tc.editor.GetValueFromControl(&pending, tc.prop, cs) {
				t.Error("expected no change directly after an update")
			}
			if !pending.Equal(tc.prop.Value()) {
				t.Errorf("expected the property value back, got %s", pending.String())
			}
		})
	}
}

func TestSetValueToUnspecified(t *testing.T) {
	for _, tc := range []struct {
		editor edit.Editor
		prop   model.Property
	}{
		{editors.Text{}, model.NewStringProperty("Name", "plain")},
		{editors.Choice{}, model.NewEnumProperty("Color", []string{"red", "green", "blue"}, 1)},
		{editors.CheckBox{}, model.NewBoolProperty("Visible", true)},
	} {
		t.Run(tc.editor.GetName(), func(t *testing.T) {
			h := newTestHost()
			cs := attach(t, h, tc.editor, tc.prop, 0, 0, 40, 1)

			tc.editor.SetValueToUnspecified(tc.prop, cs)

			var pending model.Value
			if !tc.editor.GetValueFromControl(&pending, tc.prop, cs) {
				t.Error("expected a change against the still-specified property")
			}
			if !pending.IsUnspecified() {
				t.Errorf("expected the unspecified value, got %s", pending.String())
			}
		})
	}
}

func TestSpinEditing(t *testing.T) {
	h := newTestHost()
	e := editors.Spin{}
	prop := model.NewIntProperty("Count", 5)
	cs := attach(t, h, e, prop, 0, 0, 100, 20)

	field, ok := cs.Primary.(*widget.SpinField)
	if !ok {
		t.Fatal("expected the primary control to be a spin field")
	}
	if field.Text() != "5" {
		t.Errorf("expected '5' after the update, got '%s'", field.Text())
	}
	if _, _, w, hgt := field.Box(); w != 100 || hgt != 20 {
		t.Errorf("expected a 100x20 control, got %dx%d", w, hgt)
	}

	if !e.OnEvent(h, prop, cs.Primary, keyEvent(tcell.KeyUp)) {
		t.Error("expected the increment to report a pending change")
	}
	var pending model.Value
	if !e.GetValueFromControl(&pending, prop, cs) {
		t.Error("expected the pending change to be reported on read, too")
	}
	if pending.Int() != 6 {
		t.Errorf("expected 6, got %d", pending.Int())
	}
	if prop.ValueInt() != 5 {
		t.Errorf("expected the property to be untouched at 5, got %d", prop.ValueInt())
	}
}

func TestTextEditing(t *testing.T) {
	t.Run("typing the same value back is no change", func(t *testing.T) {
		h := newTestHost()
		e := editors.Text{}
		prop := model.NewStringProperty("Name", "ab")
		cs := attach(t, h, e, prop, 0, 0, 40, 1)

		if e.OnEvent(h, prop, cs.Primary, keyEvent(tcell.KeyBackspace2)) != true {
			t.Error("expected deleting a rune to be a change")
		}
		if e.OnEvent(h, prop, cs.Primary, runeEvent('b')) {
			t.Error("expected restoring the original text to be no change")
		}
	})
	t.Run("blanking the field makes the value unspecified", func(t *testing.T) {
		h := newTestHost()
		e := editors.Text{}
		prop := model.NewStringProperty("Name", "a")
		cs := attach(t, h, e, prop, 0, 0, 40, 1)

		e.OnEvent(h, prop, cs.Primary, keyEvent(tcell.KeyBackspace2))
		var pending model.Value
		if !e.GetValueFromControl(&pending, prop, cs) {
			t.Error("expected a change")
		}
		if !pending.IsUnspecified() {
			t.Errorf("expected the unspecified value, got %s", pending.String())
		}
	})
}

func TestChoiceEditing(t *testing.T) {
	h := newTestHost()
	e := editors.Choice{}
	prop := model.NewEnumProperty("Color", []string{"red", "green", "blue"}, 0)
	cs := attach(t, h, e, prop, 0, 0, 40, 1)

	t.Run("selection stepping reports the change", func(t *testing.T) {
		if !e.OnEvent(h, prop, cs.Primary, keyEvent(tcell.KeyDown)) {
			t.Error("expected stepping the selection to be a change")
		}
		var pending model.Value
		if !e.GetValueFromControl(&pending, prop, cs) {
			t.Error("expected the pending change to be reported on read, too")
		}
		if pending.Int() != 1 {
			t.Errorf("expected selection index 1, got %d", pending.Int())
		}
	})
	t.Run("list hooks reach the dropdown", func(t *testing.T) {
		index := e.InsertItem(cs.Primary, "cyan", -1)
		if index != 3 {
			t.Errorf("expected the new item appended at 3, got %d", index)
		}
		e.DeleteItem(cs.Primary, index)
		if cs.Primary.(*widget.DropDown).Count() != 3 {
			t.Errorf("expected 3 items again, got %d", cs.Primary.(*widget.DropDown).Count())
		}
	})
	t.Run("attaching to a choiceless property fails cleanly", func(t *testing.T) {
		if e.CreateControls(h, model.NewStringProperty("Name", "x"), 0, 0, 40, 1).Valid() {
			t.Error("expected control creation to fail for a property without choices")
		}
	})
}

func TestCheckBoxEditing(t *testing.T) {
	h := newTestHost()
	e := editors.CheckBox{}
	prop := model.NewBoolProperty("Visible", false)
	cs := attach(t, h, e, prop, 0, 0, 3, 1)

	if !e.CanContainCustomImage() {
		t.Error("expected the check box editor to draw a custom glyph")
	}
	if !e.OnEvent(h, prop, cs.Primary, keyEvent(tcell.KeyEnter)) {
		t.Error("expected the toggle to be a change")
	}
	var pending model.Value
	e.GetValueFromControl(&pending, prop, cs)
	if !pending.Bool() {
		t.Error("expected the pending value to be true")
	}
	if e.OnEvent(h, prop, cs.Primary, keyEvent(tcell.KeyEnter)) {
		t.Error("expected toggling back to be no change")
	}
}

func TestDatePickerEditing(t *testing.T) {
	h := newTestHost()
	e := editors.DatePicker{}
	prop := model.NewDateProperty("Due", time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC))
	cs := attach(t, h, e, prop, 0, 0, 12, 1)

	if !e.OnEvent(h, prop, cs.Primary, keyEvent(tcell.KeyUp)) {
		t.Error("expected stepping the day to be a change")
	}
	var pending model.Value
	e.GetValueFromControl(&pending, prop, cs)
	expected := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)
	if !pending.Date().Equal(expected) {
		t.Errorf("expected %s, got %s", expected, pending.Date())
	}
}

func TestTextAndButton(t *testing.T) {
	h := newTestHost()
	e := editors.TextAndButton{}
	prop := model.NewStringProperty("Path", "/tmp")
	cs := attach(t, h, e, prop, 0, 0, 40, 1)

	buttons, ok := cs.Secondary.(*widget.MultiButton)
	if !ok {
		t.Fatal("expected a button cluster as the secondary control")
	}
	if buttons.Count() != 1 {
		t.Fatalf("expected one button, got %d", buttons.Count())
	}
	if w, _ := buttons.PrimarySize(); w != 40-5 {
		t.Errorf("expected the field to get width 35 next to '[...]', got %d", w)
	}

	t.Run("the click alone commits nothing", func(t *testing.T) {
		if e.OnEvent(h, prop, cs.Primary, edit.ButtonClick{ButtonID: buttons.ButtonID(0)}) {
			t.Error("expected the click to not be a change")
		}
		var pending model.Value
		if e.GetValueFromControl(&pending, prop, cs) {
			t.Error("expected no pending change after the click")
		}
	})
	t.Run("the click marks the field for replacement", func(t *testing.T) {
		e.OnEvent(h, prop, cs.Primary, edit.ButtonClick{ButtonID: buttons.ButtonID(0)})
		e.OnEvent(h, prop, cs.Primary, runeEvent('x'))
		if text := cs.Primary.(*widget.TextField).Text(); text != "x" {
			t.Errorf("expected 'x' to replace the contents, got '%s'", text)
		}
	})
	t.Run("an unknown button identity is ignored", func(t *testing.T) {
		if e.OnEvent(h, prop, cs.Primary, edit.ButtonClick{ButtonID: -1000}) {
			t.Error("expected an unknown button to be a no-op")
		}
	})
}

func TestChoiceAndButton(t *testing.T) {
	h := newTestHost()
	e := editors.ChoiceAndButton{}
	prop := model.NewEnumProperty("Color", []string{"red", "green", "blue"}, 2)
	cs := attach(t, h, e, prop, 0, 0, 40, 1)

	buttons, ok := cs.Secondary.(*widget.MultiButton)
	if !ok {
		t.Fatal("expected a button cluster as the secondary control")
	}

	t.Run("the cycle button is a value-changing click", func(t *testing.T) {
		if !e.OnEvent(h, prop, cs.Primary, edit.ButtonClick{ButtonID: buttons.ButtonID(0)}) {
			t.Error("expected the cycle click to be a change")
		}
		var pending model.Value
		if !e.GetValueFromControl(&pending, prop, cs) {
			t.Error("expected a pending change after the click")
		}
		if pending.Int() != 0 {
			t.Errorf("expected the selection to wrap to 0, got %d", pending.Int())
		}
	})
}

// twoButtonEditor extends the text editor with a second, value-changing
// button, for checking that clicks route by button identity.
type twoButtonEditor struct {
	editors.Text
}

func (twoButtonEditor) GetName() string { return "TwoButton" }

func (twoButtonEditor) CreateControls(host edit.Host, prop model.Property, x, y, w, hgt int) edit.ControlSet {
	styles := host.Stylesheet()
	buttons := widget.NewMultiButton(host.AllocateControlID(), util.NewRect(x, y, w, hgt), styles.Button)
	buttons.Add("...")
	buttons.AddGlyph('x')
	buttons.FinalizePosition(x, y)
	primaryW, primaryH := buttons.PrimarySize()
	field := widget.NewTextField(host.AllocateControlID(), util.NewRect(x, y, primaryW, primaryH), styles.Editor)
	return edit.ControlSet{Primary: field, Secondary: buttons}
}

func (e twoButtonEditor) OnEvent(host edit.Host, prop model.Property, primary widget.Control, ev edit.Event) bool {
	click, isClick := ev.(edit.ButtonClick)
	if !isClick {
		return e.Text.OnEvent(host, prop, primary, ev)
	}
	buttons := host.ActiveControls().Secondary.(*widget.MultiButton)
	switch click.ButtonID {
	case buttons.ButtonID(0):
		e.OnFocus(prop, primary)
		return false
	case buttons.ButtonID(1):
		primary.(*widget.TextField).Clear()
		var pending model.Value
		return e.GetValueFromControl(&pending, prop, host.ActiveControls())
	default:
		return false
	}
}

func TestTwoButtonIdentities(t *testing.T) {
	h := newTestHost()
	e := twoButtonEditor{}
	prop := model.NewStringProperty("Name", "plain")
	cs := attach(t, h, e, prop, 0, 0, 40, 1)

	buttons := cs.Secondary.(*widget.MultiButton)
	if buttons.ButtonID(0) == buttons.ButtonID(1) {
		t.Fatal("expected the two buttons to have distinct identities")
	}

	if e.OnEvent(h, prop, cs.Primary, edit.ButtonClick{ButtonID: buttons.ButtonID(0)}) {
		t.Error("expected the first button to not be a change")
	}
	if !e.OnEvent(h, prop, cs.Primary, edit.ButtonClick{ButtonID: buttons.ButtonID(1)}) {
		t.Error("expected the second button (clearing) to be a change")
	}
}
