package util

// Rect is an axis-aligned rectangle in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// NewRect constructs a Rect from the given dimensions.
func NewRect(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// Contains indicates whether the given coordinates lie within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return (x >= r.X) && (x < r.X+r.W) &&
		(y >= r.Y) && (y < r.Y+r.H)
}

// TruncateAt shortens the given string to the given length, eliding with
// "...".
// Strings within the length are returned unchanged.
func TruncateAt(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= 3 {
		return string(r[:length])
	}
	return string(append(r[:length-3], []rune("...")...))
}

// PadToWidth pads the given string with spaces on the right up to the given
// width, truncating if it exceeds it.
func PadToWidth(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return TruncateAt(s, width)
	}
	padded := make([]rune, width)
	copy(padded, r)
	for i := len(r); i < width; i++ {
		padded[i] = ' '
	}
	return string(padded)
}
