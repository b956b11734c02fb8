// Package http implements the REST transport of the project API.
//
// It wires the chi router, the project handlers and the middleware chain
// (trace id, access log, gzip, metrics). Every project endpoint answers with
// the {"state": ...} JSON envelope; service errors are mapped to status
// codes in errors_mapper.go.
package http
