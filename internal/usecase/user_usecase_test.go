package usecase

import (
	"context"
	"errors"
	"testing"

	"travel_budget/internal/domain/entities"
	mock_interfaces "travel_budget/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserProfile{}, nil)
	if _, err := uc.GetByID(context.Background(), "u-1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.UserProfile{{Email: "zoe@x.com"}, {Email: "ana@x.com"}}, nil)
	res, err := uc.List(context.Background())
	if err != nil || res[0].Email != "ana@x.com" {
		t.Fatalf("expected users sorted by email, got %+v %v", res, err)
	}
}

func TestUserUseCase_Register(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		_, err := uc.Register(context.Background(), RegisterUserCommand{ID: "u-1", Email: "nope"})
		if !errors.Is(err, ErrInvalidUserEmail) {
			t.Fatalf("expected ErrInvalidUserEmail, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		_, err := uc.Register(context.Background(), RegisterUserCommand{ID: "u-1", Email: "a@x.com", Role: "owner"})
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserProfile{ID: "u-1"}, nil)

		_, err := uc.Register(context.Background(), RegisterUserCommand{ID: "u-1", Email: "a@x.com"})
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("defaults to requester", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserProfile{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) { return p, nil },
		)

		res, err := uc.Register(context.Background(), RegisterUserCommand{ID: "u-1", Email: " Ana@X.com "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Role != entities.UserRoleRequester || res.Email != "ana@x.com" {
			t.Fatalf("unexpected profile: %+v", res)
		}
	})
}

func TestUserUseCase_ChangeRole(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)
		repo.EXPECT().UpdateRole(gomock.Any(), "u-9", entities.UserRoleApprover).Return(entities.UserProfile{}, nil)

		if _, err := uc.ChangeRole(context.Background(), "u-9", entities.UserRoleApprover); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		if _, err := uc.ChangeRole(context.Background(), "u-1", "root"); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})
}

func TestUserUseCase_EnsureAdmin(t *testing.T) {
	t.Run("creates missing admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "root").Return(entities.UserProfile{}, nil).Times(2)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.UserProfile) (entities.UserProfile, error) { return p, nil },
		)

		res, err := uc.EnsureAdmin(context.Background(), "root", "admin@miempresa.com")
		if err != nil || res.Role != entities.UserRoleAdmin {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("promotes existing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "root").Return(entities.UserProfile{ID: "root", Role: entities.UserRoleRequester}, nil)
		repo.EXPECT().UpdateRole(gomock.Any(), "root", entities.UserRoleAdmin).
			Return(entities.UserProfile{ID: "root", Role: entities.UserRoleAdmin}, nil)

		if _, err := uc.EnsureAdmin(context.Background(), "root", "admin@miempresa.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "root").Return(entities.UserProfile{ID: "root", Role: entities.UserRoleAdmin}, nil)

		if _, err := uc.EnsureAdmin(context.Background(), "root", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
