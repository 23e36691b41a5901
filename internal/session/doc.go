// Package session holds the application's authentication context.
//
// The Context is created once per invocation, initialized with a single
// token check, and passed by reference to every flow that needs to know who
// the user is. Protected flows call RequireUser instead of reading state
// directly, which keeps the route-guarding rule in one place.
package session
