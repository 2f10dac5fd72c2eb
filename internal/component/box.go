package component

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned rectangle in screen space (Y grows downwards).
type Box struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// NewBox builds a box from its top-left corner and size.
func NewBox(pos, size mgl64.Vec2) Box {
	return Box{Min: pos, Max: pos.Add(size)}
}

func (b Box) Width() float64  { return b.Max.X() - b.Min.X() }
func (b Box) Height() float64 { return b.Max.Y() - b.Min.Y() }

// Empty reports a box with no area.
func (b Box) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Shrink moves every edge inwards by margin. A margin larger than half the
// box collapses it to its centre line.
func (b Box) Shrink(margin float64) Box {
	w := b.Width() - 2*margin
	h := b.Height() - 2*margin
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cx := (b.Min.X() + b.Max.X()) / 2
	cy := (b.Min.Y() + b.Max.Y()) / 2
	min := mgl64.Vec2{cx - w/2, cy - h/2}
	return Box{Min: min, Max: min.Add(mgl64.Vec2{w, h})}
}

// Intersects reports whether two boxes overlap with positive area.
// Touching edges do not count, and an empty box never intersects.
func (b Box) Intersects(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.Min.X() < o.Max.X() && o.Min.X() < b.Max.X() &&
		b.Min.Y() < o.Max.Y() && o.Min.Y() < b.Max.Y()
}

func (b Box) String() string {
	return fmt.Sprintf("Box{(%.1f,%.1f)-(%.1f,%.1f)}", b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())
}
