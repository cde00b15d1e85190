// Package registry provides an in-memory dual-key store: every item is
// addressable both by a caller-chosen unique name and by an identifier
// the registry mints on insertion. Insertion is atomic - a failed
// Emplace leaves the registry exactly as it was - and removal deletes
// the entry from both indices at once. Identifiers are never recycled;
// once an entry is removed its identifier is simply gone.
package registry
