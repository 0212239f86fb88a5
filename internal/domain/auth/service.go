package auth

import (
	"context"
	"errors"
	"log"
	"strings"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type Service struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewService(users UserRepository, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates a customer account. Admins only come from the seed command.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Role:         RoleCustomer,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := CheckPassword(req.Password, u.PasswordHash); err != nil {
		log.Printf("auth_login_failed user_id=%d", u.ID)
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *Service) GetMe(ctx context.Context, userID int64) (*User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) issue(u *User) (*AuthResult, error) {
	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: token}, nil
}
