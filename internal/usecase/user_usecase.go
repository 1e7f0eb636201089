package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"travel_budget/internal/domain/entities"
	"travel_budget/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidUserEmail  = errors.New("invalid user email")
	ErrInvalidRole       = errors.New("invalid role")
)

type RegisterUserCommand struct {
	ID       string
	Email    string
	FullName string
	Role     entities.UserRole
}

// IUserUseCase manages user profiles and their roles.
type IUserUseCase interface {
	GetByID(ctx context.Context, id string) (entities.UserProfile, error)
	List(ctx context.Context) ([]entities.UserProfile, error)
	Register(ctx context.Context, cmd RegisterUserCommand) (entities.UserProfile, error)
	ChangeRole(ctx context.Context, id string, role entities.UserRole) (entities.UserProfile, error)
	EnsureAdmin(ctx context.Context, id, email string) (entities.UserProfile, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
	log  *zap.Logger
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, log *zap.Logger) *UserUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserUseCase{repo: repo, log: log}
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if p.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	return p, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.UserProfile, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

// Register provisions a profile. The role defaults to requester.
func (u *UserUseCase) Register(ctx context.Context, cmd RegisterUserCommand) (entities.UserProfile, error) {
	id := strings.TrimSpace(cmd.ID)
	if id == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.UserProfile{}, ErrInvalidUserEmail
	}
	role := cmd.Role
	if role == "" {
		role = entities.UserRoleRequester
	}
	if !role.Valid() {
		return entities.UserProfile{}, ErrInvalidRole
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if existing.ID != "" {
		return entities.UserProfile{}, ErrUserAlreadyExists
	}

	saved, err := u.repo.Save(ctx, entities.UserProfile{
		ID:        id,
		Email:     email,
		FullName:  strings.TrimSpace(cmd.FullName),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	u.log.Info("[user][usecase] registered", zap.String("user_id", saved.ID), zap.String("role", string(saved.Role)))
	return saved, nil
}

func (u *UserUseCase) ChangeRole(ctx context.Context, id string, role entities.UserRole) (entities.UserProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	if !role.Valid() {
		return entities.UserProfile{}, ErrInvalidRole
	}

	updated, err := u.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if updated.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	u.log.Info("[user][usecase] role changed", zap.String("user_id", id), zap.String("role", string(role)))
	return updated, nil
}

// EnsureAdmin makes sure the bootstrap administrator exists. An existing profile
// is promoted to admin; a missing one is created.
func (u *UserUseCase) EnsureAdmin(ctx context.Context, id, email string) (entities.UserProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UserProfile{}, ErrInvalidUserID
	}
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if existing.ID == "" {
		return u.Register(ctx, RegisterUserCommand{ID: id, Email: email, Role: entities.UserRoleAdmin})
	}
	if existing.Role == entities.UserRoleAdmin {
		return existing, nil
	}
	return u.ChangeRole(ctx, existing.ID, entities.UserRoleAdmin)
}
