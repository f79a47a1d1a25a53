package model

import (
	"fmt"

	"abstracta/internal/domain"
)

// AddConnection links from to to. Adding an existing pair is a no-op.
//
// When both endpoints share a parent, each endpoint also gets a rectangle in the
// other endpoint's frame so it can be drawn there as an outer node.
func (m *Model) AddConnection(from, to domain.NodeID) error {
	if !m.Exists(from) {
		return fmt.Errorf("add connection from %d: %w", from, ErrUnknownNode)
	}
	if !m.Exists(to) {
		return fmt.Errorf("add connection to %d: %w", to, ErrUnknownNode)
	}
	if m.HasConnection(from, to) {
		return nil
	}

	c := domain.Conn(from, to)
	m.connections = append(m.connections, c)

	var events []Event
	if from != to && m.siblings(from, to) {
		events = append(events, m.placeOuter(from, to)...)
		events = append(events, m.placeOuter(to, from)...)
	}
	events = append(events, Event{Type: EventConnectionAdded, Connection: c})
	m.events.dispatch(events...)
	return nil
}

// RemoveConnection removes the exact (from, to) pair. Observers are notified even
// when nothing matched.
func (m *Model) RemoveConnection(from, to domain.NodeID) {
	c := domain.Conn(from, to)
	kept := m.connections[:0]
	for _, existing := range m.connections {
		if existing != c {
			kept = append(kept, existing)
		}
	}
	m.connections = kept
	m.events.dispatch(Event{Type: EventConnectionRemoved, Connection: c})
}

// HasConnection reports whether the exact (from, to) pair exists
func (m *Model) HasConnection(from, to domain.NodeID) bool {
	for _, c := range m.connections {
		if c.From == from && c.To == to {
			return true
		}
	}
	return false
}

// Connections returns every connection in insertion order
func (m *Model) Connections() []domain.Connection {
	return append([]domain.Connection(nil), m.connections...)
}

// ConnectionsOf returns connections touching id in either direction
func (m *Model) ConnectionsOf(id domain.NodeID) []domain.Connection {
	var result []domain.Connection
	for _, c := range m.connections {
		if c.Involves(id) {
			result = append(result, c)
		}
	}
	return result
}

// Outgoing returns connections originating from id
func (m *Model) Outgoing(id domain.NodeID) []domain.Connection {
	var result []domain.Connection
	for _, c := range m.connections {
		if c.From == id {
			result = append(result, c)
		}
	}
	return result
}

// Incoming returns connections targeting id
func (m *Model) Incoming(id domain.NodeID) []domain.Connection {
	var result []domain.Connection
	for _, c := range m.connections {
		if c.To == id {
			result = append(result, c)
		}
	}
	return result
}

func (m *Model) siblings(a, b domain.NodeID) bool {
	pa, okA := m.Parent(a)
	pb, okB := m.Parent(b)
	return okA && okB && pa == pb
}
