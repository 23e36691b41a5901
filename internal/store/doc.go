// Package store provides file-based persistence for threeclick's local state.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk under the user's configured home directory.
// All methods are concurrency-safe via internal locking; writes go through a
// temp file plus rename. Concurrent processes race with last-write-wins, the
// same way two browser tabs race on localStorage.
//
// The package includes stores for:
//   - The bearer token (TokenFileStore), optionally sealed with a passphrase
//   - Cookie-consent preferences (ConsentFileStore)
//   - The chat transcript (TranscriptFileStore)
package store
