// Package superhero implements a client for the public superhero directory
// (superheroapi.com). The client performs the name search used when creating
// heroes and decodes the loosely typed payload the directory returns, where
// numbers arrive as strings and missing power statistics are reported as
// "null".
//
// The API token is part of the request path, so every error produced by this
// package has the token replaced before it is returned.
package superhero
