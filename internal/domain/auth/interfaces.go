package auth

import (
	"context"

	"flightbooking/internal/pkg/jwt"
)

// UserRepository holds only the methods the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

var _ TokenIssuer = (*jwt.Service)(nil)
