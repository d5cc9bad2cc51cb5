// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic. It also owns the error taxonomy every
// store implementation reports through, so callers can classify a failure
// without knowing which database produced it.
package store
