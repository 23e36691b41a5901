// Package commands defines the threeclick CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - login / register / logout / whoami   Account session
//   - builder                              The 3-step website wizard
//   - websites                             Manage created sites
//   - templates                            Browse site templates
//   - account                              Profile, settings, plans, API keys
//   - quick                                Marketing-page demo flows
//   - kb                                   Knowledge base
//   - chat                                 Live chat widget
//   - feedback                             Send feedback
//   - consent                              Cookie consent choices
//
// # Implementation
//
// The root command loads configuration, builds the logger and the full
// dependency graph (stores, API client, session, widgets) before any
// subcommand runs, then initialises the session from the persisted token so
// handlers see a settled authenticated or anonymous state.
package commands
