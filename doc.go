// Package micropro provides the core logic of a small-business management
// tool for independent artisans: clients, orders, invoices, a business
// profile and the session identity, all persisted locally in human-readable
// JSON files.
//
// The core functionalities include:
//   - Entity Store: owned in-memory collections of clients, orders and
//     invoices, mutated through validated create/update/delete operations
//     with write-through persistence of the affected collection.
//   - Referential Rules: orders reference clients and invoices reference
//     orders by id; at most one invoice may exist per order, while a missing
//     client degrades to an "unknown client" display instead of failing.
//   - Aggregation Engine: pure functions recomputing dashboard statistics,
//     pending-invoice lists and top-client rankings from the current
//     snapshot on every call.
//   - Quota Policy: the free tier caps the client count; blocked creations
//     are reported, never silently applied.
//   - Lifecycle Controller: session start, mock login, guarded logout, and
//     per-key isolated restore from the key-value store.
//
// This package serves as the foundational logic for the `mpro` command-line
// tool.
package micropro
