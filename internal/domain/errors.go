package domain

import "errors"

var (
	// ErrUnauthorized marks any 401 from the API. The client clears the
	// persisted token before returning it.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotAuthenticated is returned by flows that need a signed-in user
	// while the session is anonymous.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionLoading is returned when a protected flow is entered before
	// the session finished its initial check.
	ErrSessionLoading = errors.New("session still loading")

	// ErrNotFound marks a 404 from the API.
	ErrNotFound = errors.New("not found")
)
