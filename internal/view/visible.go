package view

import (
	"abstracta/internal/domain"
	"abstracta/internal/geometry"
)

// VisibleNodes returns the displayed frame's children followed by its outer
// nodes: siblings of the frame that share a connection with it
func (v *View) VisibleNodes() []domain.NodeID {
	nodes := v.model.Children(v.displayed)
	seen := make(map[domain.NodeID]bool, len(nodes))
	for _, n := range nodes {
		seen[n] = true
	}
	for _, n := range v.outerNodes() {
		if !seen[n] {
			seen[n] = true
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (v *View) outerNodes() []domain.NodeID {
	parent, ok := v.model.Parent(v.displayed)
	if !ok {
		return nil
	}
	var outer []domain.NodeID
	for _, c := range v.model.ConnectionsOf(v.displayed) {
		other := c.OtherEnd(v.displayed)
		if other == v.displayed {
			continue
		}
		if p, ok := v.model.Parent(other); ok && p == parent {
			outer = append(outer, other)
		}
	}
	return outer
}

// IsOuter reports whether id is drawn in the displayed frame as an outer node
func (v *View) IsOuter(id domain.NodeID) bool {
	if p, ok := v.model.Parent(id); ok && p == v.displayed {
		return false
	}
	return indexOf(v.outerNodes(), id) >= 0
}

// VisibleConnections returns connections between visible nodes that touch at
// least one child of the displayed frame. Links between two outer nodes are left
// out.
func (v *View) VisibleConnections() []domain.Connection {
	visible := make(map[domain.NodeID]bool)
	for _, n := range v.VisibleNodes() {
		visible[n] = true
	}
	inner := make(map[domain.NodeID]bool)
	for _, n := range v.model.Children(v.displayed) {
		inner[n] = true
	}

	var conns []domain.Connection
	for _, c := range v.model.Connections() {
		if !visible[c.From] || !visible[c.To] {
			continue
		}
		if !inner[c.From] && !inner[c.To] {
			continue
		}
		conns = append(conns, c)
	}
	return conns
}

// NodeAt returns the visible node under a viewport point. Later nodes are drawn
// on top and win.
func (v *View) NodeAt(p domain.Point) (domain.NodeID, bool) {
	nodes := v.VisibleNodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		r, err := v.DisplayedRectangle(nodes[i])
		if err != nil {
			continue
		}
		if r.Contains(p) {
			return nodes[i], true
		}
	}
	return 0, false
}

// ConnectionAt returns the visible connection whose line passes within
// tolerance pixels of p
func (v *View) ConnectionAt(p domain.Point, tolerance float64) (domain.Connection, bool) {
	var (
		best     domain.Connection
		bestDist float64
		found    bool
	)
	for _, c := range v.VisibleConnections() {
		start, end, ok := v.ConnectionLine(c)
		if !ok {
			continue
		}
		d := geometry.DistanceToSegment(p, domain.Segment{A: start, B: end})
		if d <= tolerance && (!found || d < bestDist) {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// ConnectionLine returns the viewport endpoints of a connection's line in the
// displayed frame. The bool is false when an endpoint has no rectangle there.
func (v *View) ConnectionLine(c domain.Connection) (start, end domain.Point, ok bool) {
	from, err := v.DisplayedRectangle(c.From)
	if err != nil {
		return start, end, false
	}
	to, err := v.DisplayedRectangle(c.To)
	if err != nil {
		return start, end, false
	}
	start, end = geometry.Route(from, to)
	return start, end, true
}
