package domain

import "fmt"

// NodeID identifies a node. Ids are stable and never reused while the node is alive.
type NodeID int

// RootID is the distinguished root node. It always exists and has no parent.
const RootID NodeID = 0

// Connection represents a directed link between two nodes
type Connection struct {
	From NodeID `json:"from"`
	To   NodeID `json:"to"`
}

// Conn is shorthand for Connection{From: from, To: to}
func Conn(from, to NodeID) Connection {
	return Connection{From: from, To: to}
}

// Involves checks if this connection touches the given node
func (c Connection) Involves(id NodeID) bool {
	return c.From == id || c.To == id
}

// OtherEnd returns the node on the other end of this connection
func (c Connection) OtherEnd(id NodeID) NodeID {
	if c.From == id {
		return c.To
	}
	return c.From
}

// Reversed swaps the endpoints
func (c Connection) Reversed() Connection {
	return Connection{From: c.To, To: c.From}
}

// SameLink reports whether c and o link the same two nodes, ignoring direction.
// Hovering and selection treat connections as undirected.
func (c Connection) SameLink(o Connection) bool {
	return c == o || c == o.Reversed()
}

func (c Connection) String() string {
	return fmt.Sprintf("%d->%d", c.From, c.To)
}
