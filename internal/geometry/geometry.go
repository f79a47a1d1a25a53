// Package geometry computes where connection lines meet node borders and how
// their arrowheads are shaped.
package geometry

import (
	"math"

	"abstracta/internal/domain"
)

// DefaultArrowLength is the length of each arrowhead tip segment
const DefaultArrowLength = 10

// arrowAngle is the angle between the line and each arrowhead tip segment
const arrowAngle = math.Pi / 6

// nudge breaks degenerate layouts such as coinciding centres
var nudge = domain.Pt(1, 1)

// Anchor returns the point where a line from src's centre towards dst's centre
// leaves src. Of the border crossings, the one closest to dst's centre wins.
func Anchor(src, dst domain.Rect) domain.Point {
	if p, ok := anchor(src, dst); ok {
		return p
	}
	if p, ok := anchor(src.Translate(nudge), dst); ok {
		return p
	}
	return src.Center()
}

func anchor(src, dst domain.Rect) (domain.Point, bool) {
	target := dst.Center()
	line := domain.Segment{A: src.Center(), B: target}

	var best domain.Point
	found := false
	for _, edge := range src.Edges() {
		p, ok := line.Intersect(edge)
		if !ok {
			continue
		}
		if !found || p.Dist(target) < best.Dist(target) {
			best = p
			found = true
		}
	}
	return best, found
}

// Route returns both ends of the line drawn for a connection from src to dst
func Route(src, dst domain.Rect) (start, end domain.Point) {
	return Anchor(src, dst), Anchor(dst, src)
}

// Arrowhead returns the outer ends of the two tip segments of an arrow pointing
// from from to tip. Each segment is rotated 30 degrees off the line.
func Arrowhead(from, tip domain.Point, length float64) (left, right domain.Point) {
	d := tip.Sub(from)
	back := math.Atan2(-d.Y, -d.X)
	left = tip.Add(domain.Pt(math.Cos(back+arrowAngle), math.Sin(back+arrowAngle)).Scale(length))
	right = tip.Add(domain.Pt(math.Cos(back-arrowAngle), math.Sin(back-arrowAngle)).Scale(length))
	return left, right
}

// Arrow is everything a renderer needs to draw one connection
type Arrow struct {
	Start domain.Point
	End   domain.Point
	Left  domain.Point
	Right domain.Point
}

// ArrowFor routes a connection between two rectangles and puts the head at dst
func ArrowFor(src, dst domain.Rect, length float64) Arrow {
	start, end := Route(src, dst)
	left, right := Arrowhead(start, end, length)
	return Arrow{Start: start, End: end, Left: left, Right: right}
}

// DistanceToSegment returns the distance from p to the closest point of s
func DistanceToSegment(p domain.Point, s domain.Segment) float64 {
	d := s.B.Sub(s.A)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return p.Dist(s.A)
	}
	t := ((p.X-s.A.X)*d.X + (p.Y-s.A.Y)*d.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Dist(s.A.Add(d.Scale(t)))
}
