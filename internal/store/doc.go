// Package store defines the persistence contract for hero records.
// Business logic depends only on these interfaces and sentinel errors, so the
// relational backend in internal/platform/postgres can be swapped or mocked
// without touching the service layer.
package store
