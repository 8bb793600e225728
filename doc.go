// Package partstock provides the core types and operations for managing a
// small parts inventory. It is designed to be local-first: the inventory
// lives in memory for the duration of a session, and is persisted wholesale
// as a snapshot under a single well-known key.
//
// The core functionalities include:
//   - Ledger Management: an ordered collection of Part records with strict
//     quantity invariants (a quantity never goes negative, and a part whose
//     quantity reaches zero is removed from the ledger).
//   - Projections: read-only sorted and paginated views derived from the
//     ledger for presentation, including the derived total value of each
//     part and of the whole inventory.
//   - Data Persistence: encoding and decoding of the ledger to and from a
//     human-readable JSONL snapshot with a canonical field order, so that a
//     saved snapshot round-trips exactly.
//
// This package serves as the foundational logic for the `pst` command-line
// tool; the session, catalog and kv packages build the rest of the
// application on top of it.
package partstock
