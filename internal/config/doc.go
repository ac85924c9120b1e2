// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, a .env file and
// environment variables). It provides type-safe access to the settings the
// server needs at construction time, so no component reads process state
// after startup.
package config
