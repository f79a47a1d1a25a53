// Package document converts between a graph model and its nested outline form.
//
// An outline records each node's name, its rectangle in its own parent frame,
// its outgoing connections as relative paths and its children. Rectangles of
// outer nodes are not recorded; they are regenerated when connections are
// restored.
package document

import (
	"errors"
	"fmt"
	"strings"

	"abstracta/internal/domain"
	"abstracta/internal/model"
)

// ErrUnresolvedConnection is returned when a connection path names no node
var ErrUnresolvedConnection = errors.New("unresolved connection")

// Capture walks m from the root and returns its outline
func Capture(m *model.Model) (*domain.Outline, error) {
	o := domain.NewOutline()
	nodes, err := captureChildren(m, domain.RootID)
	if err != nil {
		return nil, err
	}
	o.Nodes = nodes
	return o, nil
}

func captureChildren(m *model.Model, parent domain.NodeID) ([]domain.OutlineNode, error) {
	var nodes []domain.OutlineNode
	for _, id := range m.Children(parent) {
		node := domain.OutlineNode{Name: m.Name(id)}
		if r, err := m.Rectangle(id, parent); err == nil {
			node.Rect = r
		}

		for _, c := range m.Outgoing(id) {
			path, err := m.ResolvePath(id, c.To)
			if err != nil {
				return nil, fmt.Errorf("capture %q: %w", node.Name, err)
			}
			node.Connections = append(node.Connections, path)
		}

		children, err := captureChildren(m, id)
		if err != nil {
			return nil, err
		}
		node.Children = children
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Restore builds a new model from an outline
func Restore(o *domain.Outline, opts ...model.Option) (*model.Model, error) {
	m := model.New(opts...)
	if err := Merge(m, domain.RootID, o); err != nil {
		return nil, err
	}
	return m, nil
}

// Merge adds the outline's nodes under parent. Every connection path is
// resolved before m is touched, so an outline that does not resolve leaves m
// unchanged. All nodes and rectangles are created before any connection so
// outer placement sees the final layout.
func Merge(m *model.Model, parent domain.NodeID, o *domain.Outline) error {
	if !m.Exists(parent) {
		return fmt.Errorf("merge into %d: %w", parent, model.ErrUnknownNode)
	}

	g := &merger{m: m, parent: parent, top: plan(o.Nodes, nil)}
	links, err := g.resolve(g.top, nil)
	if err != nil {
		return err
	}

	ids := make(map[*planned]domain.NodeID)
	if err := g.create(parent, g.top, ids); err != nil {
		return err
	}
	for _, l := range links {
		to := l.to.id
		if l.to.node != nil {
			to = ids[l.to.node]
		}
		if err := m.AddConnection(ids[l.from], to); err != nil {
			return err
		}
	}
	return nil
}

// planned is an outline node that has not been created yet
type planned struct {
	name     string
	rect     domain.Rect
	paths    []string
	parent   *planned
	children []*planned
}

func plan(nodes []domain.OutlineNode, parent *planned) []*planned {
	out := make([]*planned, 0, len(nodes))
	for _, n := range nodes {
		p := &planned{name: n.Name, rect: n.Rect, paths: n.Connections, parent: parent}
		p.children = plan(n.Children, p)
		out = append(out, p)
	}
	return out
}

// place is a node of m as it will look after the merge: a live node when node
// is nil, a planned one otherwise
type place struct {
	id   domain.NodeID
	node *planned
}

type link struct {
	from *planned
	to   place
}

type merger struct {
	m      *model.Model
	parent domain.NodeID
	top    []*planned
}

// resolve walks nodes depth first and resolves their connection paths in the
// order they will be added
func (g *merger) resolve(nodes []*planned, links []link) ([]link, error) {
	for _, n := range nodes {
		for _, path := range n.paths {
			to, err := g.lookup(n, path)
			if err != nil {
				return nil, fmt.Errorf("%w %q from %q: %w", ErrUnresolvedConnection, path, n.name, err)
			}
			links = append(links, link{from: n, to: to})
		}
		var err error
		if links, err = g.resolve(n.children, links); err != nil {
			return nil, err
		}
	}
	return links, nil
}

// lookup follows the same rules as model.Lookup over the merged tree. Live
// children of a node come before planned ones, so a live name wins.
func (g *merger) lookup(from *planned, rel string) (place, error) {
	cur := place{id: g.parent}
	if from.parent != nil {
		cur = place{node: from.parent}
	}
	for _, part := range strings.Split(rel, "/") {
		switch part {
		case "", ".":
			continue
		case "..":
			up, ok := g.up(cur)
			if !ok {
				return place{}, fmt.Errorf("%q goes above the root: %w", rel, model.ErrPathNotFound)
			}
			cur = up
		default:
			child, ok := g.child(cur, part)
			if !ok {
				return place{}, fmt.Errorf("no %q along %q: %w", part, rel, model.ErrPathNotFound)
			}
			cur = child
		}
	}
	return cur, nil
}

func (g *merger) up(p place) (place, bool) {
	if p.node == nil {
		parent, ok := g.m.Parent(p.id)
		return place{id: parent}, ok
	}
	if p.node.parent != nil {
		return place{node: p.node.parent}, true
	}
	return place{id: g.parent}, true
}

func (g *merger) child(p place, name string) (place, bool) {
	if p.node != nil {
		return plannedNamed(p.node.children, name)
	}
	for _, c := range g.m.Children(p.id) {
		if g.m.Name(c) == name {
			return place{id: c}, true
		}
	}
	if p.id == g.parent {
		return plannedNamed(g.top, name)
	}
	return place{}, false
}

func plannedNamed(nodes []*planned, name string) (place, bool) {
	for _, n := range nodes {
		if n.name == name {
			return place{node: n}, true
		}
	}
	return place{}, false
}

func (g *merger) create(parent domain.NodeID, nodes []*planned, ids map[*planned]domain.NodeID) error {
	for _, n := range nodes {
		id := g.m.CreateNode()
		if err := g.m.AddChild(parent, id); err != nil {
			return err
		}
		if err := g.m.SetName(id, n.name); err != nil {
			return err
		}
		if err := g.m.SetRectangle(id, n.rect, parent); err != nil {
			return err
		}
		ids[n] = id
		if err := g.create(id, n.children, ids); err != nil {
			return err
		}
	}
	return nil
}
