// Package builder implements the 3-step website wizard.
//
// The wizard is a linear form flow over a single in-memory draft:
//
//	step 1 (business info) -> step 2 (services & hours) -> step 3 (review & submit)
//
// Steps only move one at a time, forward via Next and backward via Back, and
// the draft survives any amount of back-and-forth. Nothing is persisted: an
// abandoned wizard is simply garbage collected, and a successful submit is
// terminal.
package builder
