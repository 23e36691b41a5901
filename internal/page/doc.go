// Package page provides a small in-process event bus modelling a page
// lifecycle: load, user interactions (clicks, submits, scrolls), runtime
// errors and unload. Widgets subscribe to the events they care about and
// the host application dispatches them as they happen.
package page
