// Package chat implements the keyword-driven live chat widget. Replies come
// from a fixed keyword table checked in declaration order; anything that
// matches no keyword gets a hand-off message. The transcript is persisted
// so it survives restarts.
package chat
