// Package storage is the client's persistent key-value store, the place the
// session profile survives between runs.
//
// Values are opaque byte slices keyed by string. The SQLite implementation
// keeps them in a single "metadata" table created by embedded goose
// migrations (see InitDatabase). Get returns (nil, nil) for absent keys so
// callers can treat "missing" and "empty" the same way.
package storage
