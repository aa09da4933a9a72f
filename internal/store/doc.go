// Package store provides the SQLite-backed bibliographic entry source.
//
// Entries are keyed by their stable ID, the same identity the engine
// uses for citation-number reuse, and stored as JSON payloads so the
// record model can grow fields without schema migrations. The store is
// an external collaborator of the engine: rendering itself never
// touches it, all entry data is materialized before a session starts.
package store
