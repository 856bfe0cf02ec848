// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authentication, request tracing, and access logging are handled in
// this package before requests are delegated to the service layer. The
// transport never sees plaintext vault content: entry payloads arrive and
// leave as opaque (iv, ciphertext) pairs.
package http
