package interfaces

import (
	"context"

	"travel_budget/internal/domain/entities"
)

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/mock_user_repository.go -package=mock_interfaces

// IUserRepository abstracts persistence of user profiles and roles.
// GetByID returns a zero profile (empty ID) and a nil error when the user is unknown.
type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
	List(ctx context.Context) ([]entities.UserProfile, error)
	Save(ctx context.Context, p entities.UserProfile) (entities.UserProfile, error)
	UpdateRole(ctx context.Context, id string, role entities.UserRole) (entities.UserProfile, error)
}
