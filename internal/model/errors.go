package model

import "errors"

var (
	// ErrUnknownNode is returned when an operation names a node that does not exist
	ErrUnknownNode = errors.New("unknown node")
	// ErrRootNode is returned for operations the root does not support
	ErrRootNode = errors.New("operation not permitted on root node")
	// ErrIDInUse is returned when an explicit id belongs to a live node
	ErrIDInUse = errors.New("node id already in use")
	// ErrIDOutOfRange is returned when an explicit id is negative or not below the generator
	ErrIDOutOfRange = errors.New("node id out of range")
	// ErrNoFrame is returned when no rectangle has been stored in a frame
	ErrNoFrame = errors.New("no rectangles in frame")
	// ErrNoRectangle is returned when a node has no rectangle in a frame
	ErrNoRectangle = errors.New("no rectangle for node in frame")
	// ErrCycle is returned when re-parenting would make a node its own ancestor
	ErrCycle = errors.New("node would become its own ancestor")
	// ErrPathNotFound is returned when a relative path does not resolve
	ErrPathNotFound = errors.New("path not found")
	// ErrAmbiguousPath is returned when no relative path leads back to the target
	ErrAmbiguousPath = errors.New("node cannot be addressed by a relative path")
)
