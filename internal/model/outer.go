package model

import (
	"math"

	"abstracta/internal/domain"
)

// placeOuter stores a rectangle for a inside b's frame, beside b's children on
// the side a lies on relative to b. The rectangle is not recomputed when b's
// children move later.
func (m *Model) placeOuter(a, b domain.NodeID) []Event {
	side := m.sideOf(a, b)

	box, ok := domain.BoundingBox(m.ChildRectangles(b))
	if !ok {
		box = domain.Rect{}
	}

	m.putRect(a, OuterRect(box, side, m.outerSize, m.outerGap), b)
	return []Event{{Type: EventRectangleChanged, Node: a, Frame: b}}
}

// sideOf picks the side of b that a lies on, using the dominant axis of the
// vector between their centres in the shared parent frame
func (m *Model) sideOf(a, b domain.NodeID) domain.Side {
	parent, ok := m.Parent(b)
	if !ok {
		return domain.SideLeft
	}
	ra, errA := m.Rectangle(a, parent)
	rb, errB := m.Rectangle(b, parent)
	if errA != nil || errB != nil {
		return domain.SideLeft
	}
	return DominantSide(ra.Center().Sub(rb.Center()))
}

// DominantSide maps a direction vector to a side. Ties between the axes go to
// the horizontal axis and a zero vector maps to SideLeft.
func DominantSide(d domain.Point) domain.Side {
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X > 0 {
			return domain.SideRight
		}
		return domain.SideLeft
	}
	if d.Y > 0 {
		return domain.SideBottom
	}
	return domain.SideTop
}

// OuterRect places a box of the given size gap units outside content on side,
// centred on content along the other axis
func OuterRect(content domain.Rect, side domain.Side, size domain.Size, gap float64) domain.Rect {
	c := content.Center()
	switch side {
	case domain.SideRight:
		return domain.R(content.MaxX()+gap, c.Y-size.H/2, size.W, size.H)
	case domain.SideTop:
		return domain.R(c.X-size.W/2, content.MinY()-gap-size.H, size.W, size.H)
	case domain.SideBottom:
		return domain.R(c.X-size.W/2, content.MaxY()+gap, size.W, size.H)
	default:
		return domain.R(content.MinX()-gap-size.W, c.Y-size.H/2, size.W, size.H)
	}
}
