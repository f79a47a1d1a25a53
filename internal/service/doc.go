// Package service implements the document workflows of abstracta.
//
// DocumentService coordinates the codec, document and repository layers:
// it reads and writes nested-list files, keeps named snapshots in the
// document library and rebuilds models from either source.
//
// # Event System
//
// The service publishes events via EventBus when documents are imported,
// exported, saved, loaded or deleted. Subscribers receive them on buffered
// channels; a subscriber that is not ready misses the event.
package service
