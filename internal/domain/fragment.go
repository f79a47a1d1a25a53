package domain

import "time"

// Outline is a nested-list document: the children of the root in order
type Outline struct {
	Nodes []OutlineNode `json:"nodes"`
}

// OutlineNode is one node of an outline with its rectangle in its own parent frame
// and its outgoing connections as paths relative to it
type OutlineNode struct {
	Name        string        `json:"name"`
	Rect        Rect          `json:"rect"`
	Connections []string      `json:"connections,omitempty"`
	Children    []OutlineNode `json:"children,omitempty"`
}

// NewOutline creates an empty outline
func NewOutline() *Outline {
	return &Outline{
		Nodes: make([]OutlineNode, 0),
	}
}

// AddNode appends a top-level node
func (o *Outline) AddNode(node OutlineNode) {
	o.Nodes = append(o.Nodes, node)
}

// Count returns the number of nodes at every depth
func (o *Outline) Count() int {
	return countNodes(o.Nodes)
}

// ConnectionCount returns the number of connection paths at every depth
func (o *Outline) ConnectionCount() int {
	return countConnections(o.Nodes)
}

func countNodes(nodes []OutlineNode) int {
	n := len(nodes)
	for _, node := range nodes {
		n += countNodes(node.Children)
	}
	return n
}

func countConnections(nodes []OutlineNode) int {
	n := 0
	for _, node := range nodes {
		n += len(node.Connections) + countConnections(node.Children)
	}
	return n
}

// StoredDocument is a named snapshot kept in the document library
type StoredDocument struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Format    string    `json:"format"`
	Content   []byte    `json:"-"`
	NodeCount int       `json:"node_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
