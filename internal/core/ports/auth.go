package ports

import (
	"context"

	"github.com/coffeelounge/shiftboard/internal/core/domain"
)

// AuthRepository defines persistence for operator accounts.
type AuthRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// AuthService handles operator registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	// Login returns a signed JWT and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
