package domain

// User is the profile returned by the auth endpoints.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// UserUpdate carries a partial profile; zero-value fields are left untouched
// when merged into the session's user.
type UserUpdate struct {
	Email    string
	FullName string
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserSettings is the payload for PUT /users/settings.
type UserSettings struct {
	Notifications bool   `json:"notifications"`
	Newsletter    bool   `json:"newsletter"`
	Theme         string `json:"theme,omitempty"`
}

// ProfileUpdateRequest is the payload for PUT /users/profile.
type ProfileUpdateRequest struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}
