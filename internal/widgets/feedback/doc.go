// Package feedback implements the feedback form widget: type, message,
// optional email and star rating posted as a single payload. Outcome
// messages are transient and expire after a few seconds, and the form
// closes itself on a successful submit.
package feedback
