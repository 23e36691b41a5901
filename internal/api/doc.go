// Package api provides the HTTP client for the website-builder REST API.
//
// Every exposed call issues exactly one request and returns the decoded
// response body on success, or a normalized *Error on failure. There is no
// retry or backoff; retries are user-initiated.
//
// Request side: all bodies are JSON, and when a bearer token is present in
// the token store it is attached as an Authorization header. The client only
// ever reads the token; the session context owns writing it.
//
// Response side: a 2xx body is decoded and returned. Any non-2xx becomes an
// *Error carrying the server-provided message when one exists. A 401 is
// special-cased globally: the persisted token is cleared and the registered
// unauthorized handler fires before the error is returned, regardless of
// which call produced it.
package api
