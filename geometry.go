package press

// ContactPoint is a pointer position with an optional contact area. Width and
// Height take precedence over the radii; all zero is a single point.
type ContactPoint struct {
	ClientX, ClientY float64
	Width, Height    float64
	RadiusX, RadiusY float64
}

// PointRect returns the rectangle covered by the contact: the point padded by
// half the contact width/height (or the radius) in each direction.
func PointRect(p ContactPoint) Rect {
	offsetX := p.Width / 2
	if offsetX == 0 {
		offsetX = p.RadiusX
	}
	offsetY := p.Height / 2
	if offsetY == 0 {
		offsetY = p.RadiusY
	}
	return Rect{
		Left:   p.ClientX - offsetX,
		Top:    p.ClientY - offsetY,
		Right:  p.ClientX + offsetX,
		Bottom: p.ClientY + offsetY,
	}
}

// RectsOverlap reports whether a and b overlap.
// Rectangles sharing only an edge are considered overlapping.
func RectsOverlap(a, b Rect) bool {
	// Separated on the x axis.
	if a.Left > b.Right || b.Left > a.Right {
		return false
	}
	// Separated on the y axis.
	if a.Top > b.Bottom || b.Top > a.Bottom {
		return false
	}
	return true
}

// IsOverTarget reports whether the contact overlaps the element's bounding
// rectangle.
func IsOverTarget(p ContactPoint, target Element) bool {
	if target == nil {
		return false
	}
	return RectsOverlap(target.BoundingClientRect(), PointRect(p))
}
