// Package api exposes the hero service over HTTP.
//
// Routes:
//   - POST /hero creates a hero from the external directory
//   - GET /hero queries stored heroes by name and attribute filters
//
// Handlers translate requests into service calls and map service errors to
// status codes and client messages (MapErrorToStatusCode, GetSafeErrorMessage).
// Every error body is a JSON object with a single "error" field.
package api
