// Package domain contains the hero record, the typed query filters applied
// to it, and the error kinds shared by every layer. It has no dependencies on
// storage or transport.
package domain
