package ports

import "github.com/contentforge/admin-api/internal/core/domain"

type NavigationService interface {
	Resolve(state domain.AuthState) domain.Navigation
}
