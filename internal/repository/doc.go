// Package repository defines the data access interface for the abstracta
// document library.
//
// A library entry is a whole exported document kept under a unique name.
// Saving a name again replaces the previous snapshot; there is no history.
//
// # SQLite Implementation
//
// The sqlite subpackage stores entries in a single table with WAL mode
// enabled. The schema is created on open and tests run against in-memory
// databases.
package repository
