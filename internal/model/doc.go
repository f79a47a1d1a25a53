// Package model owns the hierarchical graph behind the editor.
//
// A Model holds nodes and their names, a forest of parent/child relations rooted at
// domain.RootID, rectangles keyed by (node, frame) and an ordered list of directed
// connections. Every mutation goes through Model methods and is announced to
// subscribed observers once it is fully applied.
//
// # Failure Policy
//
// Display queries degrade gracefully: Name, Parent, Children and the connection
// queries return zero values for unknown nodes. Operations that would corrupt the
// structure (unknown ids, id reuse, missing rectangles, unresolvable paths) return
// an error wrapping one of the Err* sentinels and leave the model untouched.
//
// # Frames
//
// A node's rectangle is only meaningful relative to a frame. A node is normally
// positioned in its parent's frame; siblings joined by a connection are also
// positioned in each other's frame as outer nodes (see AddConnection).
//
// The model is not safe for concurrent use. Observers must not mutate the model
// from inside a notification.
package model
