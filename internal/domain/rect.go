package domain

import "math"

// Rect is an axis-aligned rectangle. Its coordinates only mean something relative
// to the frame it was stored under.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the centre point of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate moves the rectangle by d
func (r Rect) Translate(d Point) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Scale multiplies position and extent by k
func (r Rect) Scale(k float64) Rect {
	return Rect{X: r.X * k, Y: r.Y * k, W: r.W * k, H: r.H * k}
}

// Union returns the smallest rectangle containing both r and o
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether p lies inside r, borders included
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Edges returns the four border segments: top, right, bottom, left
func (r Rect) Edges() [4]Segment {
	tl := Point{X: r.MinX(), Y: r.MinY()}
	tr := Point{X: r.MaxX(), Y: r.MinY()}
	br := Point{X: r.MaxX(), Y: r.MaxY()}
	bl := Point{X: r.MinX(), Y: r.MaxY()}
	return [4]Segment{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}
}

// BoundingBox returns the union of rects. The bool is false for an empty input.
func BoundingBox(rects []Rect) (Rect, bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}
	box := rects[0]
	for _, r := range rects[1:] {
		box = box.Union(r)
	}
	return box, true
}

// Segment is a bounded line segment from A to B
type Segment struct {
	A Point
	B Point
}

// Intersect returns the point where s and o cross. Parallel and collinear
// segments do not intersect.
func (s Segment) Intersect(o Segment) (Point, bool) {
	d1 := s.B.Sub(s.A)
	d2 := o.B.Sub(o.A)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return Point{}, false
	}

	w := o.A.Sub(s.A)
	t := (w.X*d2.Y - w.Y*d2.X) / denom
	u := (w.X*d1.Y - w.Y*d1.X) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return s.A.Add(d1.Scale(t)), true
}

// Length returns the segment length
func (s Segment) Length() float64 {
	return s.A.Dist(s.B)
}
