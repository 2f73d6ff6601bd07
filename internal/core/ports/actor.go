package ports

import "github.com/contentforge/admin-api/internal/core/domain"

// Actor identifies who performs an operation. Services use it for scoping
// and for the activity feed.
type Actor struct {
	UserID string
	Email  string
	Role   domain.Role
}

// ActorFromSession derives the Actor of an authenticated request.
func ActorFromSession(s *domain.Session) Actor {
	if s == nil {
		return Actor{}
	}
	return Actor{UserID: s.UserID, Email: s.Email, Role: s.Role}
}
