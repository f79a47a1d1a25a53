package model

import (
	"fmt"

	"abstracta/internal/domain"
)

const (
	// DefaultOuterWidth and DefaultOuterHeight size the box generated for an outer node
	DefaultOuterWidth  = 100
	DefaultOuterHeight = 50
	// DefaultOuterGap is the distance between an outer box and the frame's content
	DefaultOuterGap = 50
)

// slot is one arena entry. Dead slots stay in place so ids are never shifted.
type slot struct {
	alive    bool
	name     string
	children []domain.NodeID
}

// Model is the canonical hierarchical graph
type Model struct {
	slots []slot
	// rects is keyed frame first: rects[frame][node]
	rects       map[domain.NodeID]map[domain.NodeID]domain.Rect
	connections []domain.Connection

	outerSize domain.Size
	outerGap  float64

	events dispatcher
}

// Option configures a Model
type Option func(*Model)

// WithOuterBox sets the size and gap used when placing outer nodes
func WithOuterBox(size domain.Size, gap float64) Option {
	return func(m *Model) {
		if size.W > 0 && size.H > 0 {
			m.outerSize = size
		}
		if gap >= 0 {
			m.outerGap = gap
		}
	}
}

// New creates a model containing only the root node
func New(opts ...Option) *Model {
	m := &Model{
		slots:     []slot{{alive: true}},
		rects:     make(map[domain.NodeID]map[domain.NodeID]domain.Rect),
		outerSize: domain.Size{W: DefaultOuterWidth, H: DefaultOuterHeight},
		outerGap:  DefaultOuterGap,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers an observer and returns a function that removes it
func (m *Model) Subscribe(o Observer) func() {
	return m.events.subscribe(o)
}

// Exists reports whether id is a live node
func (m *Model) Exists(id domain.NodeID) bool {
	return id >= 0 && int(id) < len(m.slots) && m.slots[id].alive
}

// Len returns the number of live nodes, root included
func (m *Model) Len() int {
	n := 0
	for _, s := range m.slots {
		if s.alive {
			n++
		}
	}
	return n
}

// Nodes returns every live node id in ascending order
func (m *Model) Nodes() []domain.NodeID {
	ids := make([]domain.NodeID, 0, len(m.slots))
	for i, s := range m.slots {
		if s.alive {
			ids = append(ids, domain.NodeID(i))
		}
	}
	return ids
}

// NextID returns the id the next CreateNode call will assign
func (m *Model) NextID() domain.NodeID {
	return domain.NodeID(len(m.slots))
}

// CreateNode allocates the next id and attaches the node under the root
func (m *Model) CreateNode() domain.NodeID {
	id := domain.NodeID(len(m.slots))
	m.slots = append(m.slots, slot{alive: true})
	m.attach(id)
	return id
}

// CreateNodeWithID revives a previously allocated id. The id must be below the
// generator's high-water mark and not belong to a live node.
func (m *Model) CreateNodeWithID(id domain.NodeID) (domain.NodeID, error) {
	if id < 0 || int(id) >= len(m.slots) {
		return 0, fmt.Errorf("create node %d (next id %d): %w", id, len(m.slots), ErrIDOutOfRange)
	}
	if m.slots[id].alive {
		return 0, fmt.Errorf("create node %d: %w", id, ErrIDInUse)
	}
	m.slots[id] = slot{alive: true}
	m.attach(id)
	return id, nil
}

func (m *Model) attach(id domain.NodeID) {
	root := &m.slots[domain.RootID]
	root.children = append(root.children, id)
	m.events.dispatch(
		Event{Type: EventNodeCreated, Node: id},
		Event{Type: EventChildAdded, Node: id, Parent: domain.RootID},
	)
}

// DestroyNode removes a node and everything below it. Rectangles keyed to any
// removed node, as subject or as frame, and every connection touching one are
// dropped with it.
func (m *Model) DestroyNode(id domain.NodeID) error {
	if !m.Exists(id) {
		return fmt.Errorf("destroy node %d: %w", id, ErrUnknownNode)
	}
	if id == domain.RootID {
		return fmt.Errorf("destroy node %d: %w", id, ErrRootNode)
	}

	var events []Event
	if parent, ok := m.Parent(id); ok {
		m.removeChild(parent, id)
		events = append(events, Event{Type: EventChildRemoved, Node: id, Parent: parent})
	}
	events = m.destroySubtree(id, events)
	m.events.dispatch(events...)
	return nil
}

// destroySubtree removes descendants first so each NodeDestroyed event names a
// node whose children are already gone
func (m *Model) destroySubtree(id domain.NodeID, events []Event) []Event {
	for _, child := range m.slots[id].children {
		events = m.destroySubtree(child, events)
	}

	delete(m.rects, id)
	for _, byNode := range m.rects {
		delete(byNode, id)
	}

	kept := m.connections[:0]
	var removed []domain.Connection
	for _, c := range m.connections {
		if c.Involves(id) {
			removed = append(removed, c)
			continue
		}
		kept = append(kept, c)
	}
	m.connections = kept
	for _, c := range removed {
		events = append(events, Event{Type: EventConnectionRemoved, Connection: c})
	}

	m.slots[id] = slot{}
	return append(events, Event{Type: EventNodeDestroyed, Node: id})
}

// SetName renames a node
func (m *Model) SetName(id domain.NodeID, name string) error {
	if !m.Exists(id) {
		return fmt.Errorf("set name of %d: %w", id, ErrUnknownNode)
	}
	m.slots[id].name = name
	m.events.dispatch(Event{Type: EventNodeRenamed, Node: id, Name: name})
	return nil
}

// Name returns the node's name, or "" for an unknown node
func (m *Model) Name(id domain.NodeID) string {
	if !m.Exists(id) {
		return ""
	}
	return m.slots[id].name
}

// NodesWithName returns every live node carrying name
func (m *Model) NodesWithName(name string) []domain.NodeID {
	var ids []domain.NodeID
	for i, s := range m.slots {
		if s.alive && s.name == name {
			ids = append(ids, domain.NodeID(i))
		}
	}
	return ids
}

// SetRectangle stores the rectangle of id as seen from frame
func (m *Model) SetRectangle(id domain.NodeID, rect domain.Rect, frame domain.NodeID) error {
	if !m.Exists(id) {
		return fmt.Errorf("set rectangle of %d: %w", id, ErrUnknownNode)
	}
	if !m.Exists(frame) {
		return fmt.Errorf("set rectangle of %d in frame %d: %w", id, frame, ErrUnknownNode)
	}
	m.putRect(id, rect, frame)
	m.events.dispatch(Event{Type: EventRectangleChanged, Node: id, Frame: frame})
	return nil
}

func (m *Model) putRect(id domain.NodeID, rect domain.Rect, frame domain.NodeID) {
	byNode, ok := m.rects[frame]
	if !ok {
		byNode = make(map[domain.NodeID]domain.Rect)
		m.rects[frame] = byNode
	}
	byNode[id] = rect
}

// Rectangle returns the rectangle of id as seen from frame. Asking for a pair that
// was never stored is an error.
func (m *Model) Rectangle(id, frame domain.NodeID) (domain.Rect, error) {
	if !m.Exists(id) {
		return domain.Rect{}, fmt.Errorf("rectangle of %d: %w", id, ErrUnknownNode)
	}
	byNode, ok := m.rects[frame]
	if !ok {
		return domain.Rect{}, fmt.Errorf("rectangle of %d in frame %d: %w", id, frame, ErrNoFrame)
	}
	rect, ok := byNode[id]
	if !ok {
		return domain.Rect{}, fmt.Errorf("rectangle of %d in frame %d: %w", id, frame, ErrNoRectangle)
	}
	return rect, nil
}

// HasRectangle reports whether a rectangle is stored for (id, frame)
func (m *Model) HasRectangle(id, frame domain.NodeID) bool {
	_, ok := m.rects[frame][id]
	return ok
}

// ChildRectangles returns the stored rectangles of frame's children in that frame,
// in child order. Children without one are skipped.
func (m *Model) ChildRectangles(frame domain.NodeID) []domain.Rect {
	var rects []domain.Rect
	for _, child := range m.Children(frame) {
		if r, ok := m.rects[frame][child]; ok {
			rects = append(rects, r)
		}
	}
	return rects
}

// AddChild moves child under parent, detaching it from its previous parent.
// It is a no-op when child is already under parent.
func (m *Model) AddChild(parent, child domain.NodeID) error {
	if !m.Exists(parent) {
		return fmt.Errorf("add child to %d: %w", parent, ErrUnknownNode)
	}
	if !m.Exists(child) {
		return fmt.Errorf("add child %d: %w", child, ErrUnknownNode)
	}
	if child == domain.RootID {
		return fmt.Errorf("add child %d: %w", child, ErrRootNode)
	}
	if child == parent || m.IsAncestor(child, parent) {
		return fmt.Errorf("add child %d to %d: %w", child, parent, ErrCycle)
	}

	old, hasOld := m.Parent(child)
	if hasOld && old == parent {
		return nil
	}

	var events []Event
	if hasOld {
		m.removeChild(old, child)
		events = append(events, Event{Type: EventChildRemoved, Node: child, Parent: old})
	}
	m.slots[parent].children = append(m.slots[parent].children, child)
	events = append(events, Event{Type: EventChildAdded, Node: child, Parent: parent})
	m.events.dispatch(events...)
	return nil
}

func (m *Model) removeChild(parent, child domain.NodeID) {
	children := m.slots[parent].children
	for i, c := range children {
		if c == child {
			m.slots[parent].children = append(children[:i:i], children[i+1:]...)
			return
		}
	}
}

// Children returns the node's children in order, or nil for an unknown node
func (m *Model) Children(id domain.NodeID) []domain.NodeID {
	if !m.Exists(id) {
		return nil
	}
	return append([]domain.NodeID(nil), m.slots[id].children...)
}

// Parent returns the node's parent. The bool is false for the root and for
// unknown nodes.
func (m *Model) Parent(id domain.NodeID) (domain.NodeID, bool) {
	// Linear scan over all child lists; there is no inverse index to keep in sync.
	for i, s := range m.slots {
		if !s.alive {
			continue
		}
		for _, c := range s.children {
			if c == id {
				return domain.NodeID(i), true
			}
		}
	}
	return 0, false
}

// Ancestors returns the chain of ancestors of id, nearest first, ending at the root
func (m *Model) Ancestors(id domain.NodeID) []domain.NodeID {
	var chain []domain.NodeID
	for {
		parent, ok := m.Parent(id)
		if !ok {
			return chain
		}
		chain = append(chain, parent)
		id = parent
	}
}

// IsAncestor reports whether a is a proper ancestor of b
func (m *Model) IsAncestor(a, b domain.NodeID) bool {
	for _, anc := range m.Ancestors(b) {
		if anc == a {
			return true
		}
	}
	return false
}

// IsAbstraction reports whether the node has an inner graph
func (m *Model) IsAbstraction(id domain.NodeID) bool {
	return len(m.Children(id)) > 0
}
