// Package postgres provides the PostgreSQL implementation of the hero store
// defined in the internal/store package. It translates typed hero filters into
// parameterized SQL, maps constraint violations onto store errors, and ships the
// schema as goose migrations embedded in the binary.
package postgres
