// Package app wires application dependencies for the CLI.
//
// It builds the concrete file stores, the API client and the session
// context from Config, exposing them via the Wire struct for commands to
// use.
package app
