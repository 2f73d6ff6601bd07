package domain

import "time"

// Session is the server-side record behind an issued token.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer usable at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// AuthState is what the dashboard shell needs to decide what to render.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"is_authenticated"`
	IsLoading       bool  `json:"is_loading"`
}

// Anonymous is the state with no user attached.
func Anonymous() AuthState {
	return AuthState{}
}

// Authenticated builds the state for a signed-in user.
func Authenticated(u *User) AuthState {
	return AuthState{User: u, IsAuthenticated: true}
}
