// Package domain defines the core value types for the abstracta diagram editor.
//
// This package contains the identities, geometry and document shapes shared by the
// graph model, the view state and the import/export collaborators.
//
// # Core Types
//
// NodeID identifies a node in the hierarchical graph. RootID is the distinguished
// root that always exists and has no parent.
//
// Rect, Point, Size and Segment describe geometry. A node's rectangle is always
// expressed relative to a frame (an ancestor node), so Rect carries no identity of
// its own.
//
// Connection is a directed (From, To) pair between two nodes.
//
// # Documents
//
// Outline is the nested-list document shape used by codecs: every node carries its
// name, its rectangle in its own parent frame, its outgoing connections as relative
// paths and its children.
//
// StoredDocument is a named snapshot of an exported outline kept in the document
// library.
//
// # Design Principles
//
// - Immutable value objects
// - No database or external dependencies
package domain
