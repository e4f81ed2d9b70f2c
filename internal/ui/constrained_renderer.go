package ui

import "github.com/ja-he/propgrid/internal/styling"

// CR is a constrained renderer.
// It only allows rendering using the underlying renderer within the set
// dimension constraint.
//
// Non-conforming rendering requests are corrected to be within the bounds.
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer constructs a CR over the given renderer with the
// given constraint.
func NewConstrainedRenderer(
	renderer Renderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the constraint, i.E. the dimensions of this renderer.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the given text, within the given dimensions, constrained by
// the set constraint, in the given style.
func (r *CR) DrawText(x, y, w, h int, sty styling.DrawStyling, text string) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	r.renderer.DrawText(cx, cy, cw, ch, sty, text)
}

// DrawBox draws a box of the given dimensions, constrained by the set
// constraint, in the given style.
func (r *CR) DrawBox(x, y, w, h int, sty styling.DrawStyling) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	r.renderer.DrawBox(cx, cy, cw, ch, sty)
}

func (r *CR) constrain(rawX, rawY, rawW, rawH int) (constrainedX, constrainedY, constrainedW, constrainedH int) {
	xConstraint, yConstraint, wConstraint, hConstraint := r.constraint()

	// ensure x, y in bounds, shorten width,height if x,y needed to be moved
	if rawX < xConstraint {
		constrainedX = xConstraint
		rawW -= xConstraint - rawX
	} else {
		constrainedX = rawX
	}
	if rawY < yConstraint {
		constrainedY = yConstraint
		rawH -= yConstraint - rawY
	} else {
		constrainedY = rawY
	}

	// shorten width,height if they reach outside the constraint
	if constrainedX+rawW > xConstraint+wConstraint {
		constrainedW = (xConstraint + wConstraint) - constrainedX
	} else {
		constrainedW = rawW
	}
	if constrainedY+rawH > yConstraint+hConstraint {
		constrainedH = (yConstraint + hConstraint) - constrainedY
	} else {
		constrainedH = rawH
	}

	return constrainedX, constrainedY, constrainedW, constrainedH
}
