package widget

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/propgrid/internal/input"
	"github.com/ja-he/propgrid/internal/styling"
	"github.com/ja-he/propgrid/internal/ui"
	"github.com/ja-he/propgrid/internal/util"
)

// TextField is a single-line text input control.
type TextField struct {
	BaseControl

	content   string
	cursorPos int

	// pendingReplace marks the whole content as to be replaced by the next
	// rune input, cleared by any other manipulation (the terminal analog of
	// select-all on focus).
	pendingReplace bool
}

// NewTextField constructs a text field with the given identity, dimensions,
// and style.
func NewTextField(id int, box util.Rect, style styling.DrawStyling) *TextField {
	return &TextField{BaseControl: NewBaseControl(id, box, style)}
}

// Text returns the current contents.
func (f *TextField) Text() string { return f.content }

// SetText replaces the contents and places the cursor past their end.
func (f *TextField) SetText(s string) {
	f.content = s
	f.cursorPos = len([]rune(s))
	f.pendingReplace = false
}

// Clear empties the field.
func (f *TextField) Clear() {
	f.content = ""
	f.cursorPos = 0
	f.pendingReplace = false
}

// SelectAll marks the whole content to be replaced by the next rune input.
func (f *TextField) SelectAll() {
	f.pendingReplace = true
}

// CursorPos returns the current cursor position, 0 being before the first
// rune.
func (f *TextField) CursorPos() int { return f.cursorPos }

// AddRune inserts a printable rune at the cursor position.
func (f *TextField) AddRune(newRune rune) {
	if !strconv.IsPrint(newRune) {
		return
	}
	if f.pendingReplace {
		f.content = ""
		f.cursorPos = 0
		f.pendingReplace = false
	}
	runes := []rune(f.content)
	result := make([]rune, 0, len(runes)+1)
	result = append(result, runes[:f.cursorPos]...)
	result = append(result, newRune)
	result = append(result, runes[f.cursorPos:]...)
	f.content = string(result)
	f.cursorPos++
}

// BackspaceRune deletes the rune before the cursor position.
func (f *TextField) BackspaceRune() {
	f.pendingReplace = false
	if f.cursorPos > 0 {
		runes := []rune(f.content)
		f.content = string(append(runes[:f.cursorPos-1:f.cursorPos-1], runes[f.cursorPos:]...))
		f.cursorPos--
	}
}

// DeleteRune deletes the rune at the cursor position.
func (f *TextField) DeleteRune() {
	f.pendingReplace = false
	runes := []rune(f.content)
	if f.cursorPos < len(runes) {
		f.content = string(append(runes[:f.cursorPos:f.cursorPos], runes[f.cursorPos+1:]...))
	}
}

// MoveCursorLeft moves the cursor one rune to the left.
func (f *TextField) MoveCursorLeft() {
	f.pendingReplace = false
	if f.cursorPos > 0 {
		f.cursorPos--
	}
}

// MoveCursorRight moves the cursor one rune to the right.
func (f *TextField) MoveCursorRight() {
	f.pendingReplace = false
	if f.cursorPos < len([]rune(f.content)) {
		f.cursorPos++
	}
}

// MoveCursorToBeginning moves the cursor before the first rune.
func (f *TextField) MoveCursorToBeginning() {
	f.pendingReplace = false
	f.cursorPos = 0
}

// MoveCursorToEnd moves the cursor past the last rune.
func (f *TextField) MoveCursorToEnd() {
	f.pendingReplace = false
	f.cursorPos = len([]rune(f.content))
}

// HandleKey lets this field process a key input directed at it.
func (f *TextField) HandleKey(k input.Key) bool {
	switch k.Key {
	case tcell.KeyRune:
		f.AddRune(k.Ch)
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.BackspaceRune()
		return true
	case tcell.KeyDelete:
		f.DeleteRune()
		return true
	case tcell.KeyLeft:
		f.MoveCursorLeft()
		return true
	case tcell.KeyRight:
		f.MoveCursorRight()
		return true
	case tcell.KeyCtrlA:
		f.MoveCursorToBeginning()
		return true
	case tcell.KeyCtrlE:
		f.MoveCursorToEnd()
		return true
	default:
		return false
	}
}

// Draw draws this field via the given renderer.
func (f *TextField) Draw(r ui.Renderer, focussed bool) {
	x, y, w, h := f.Box()

	style := f.Style()
	r.DrawBox(x, y, w, h, style)
	r.DrawText(x, y, w, h, style, util.TruncateAt(f.content, w))

	if focussed {
		cursorStyle := style.Inverted()
		runes := []rune(f.content)
		cursorRune := " "
		if f.cursorPos < len(runes) {
			cursorRune = string(runes[f.cursorPos])
		}
		if f.cursorPos < w {
			r.DrawText(x+f.cursorPos, y, 1, 1, cursorStyle, cursorRune)
		}
	}
}
