package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/logger"

	"flightbooking/internal/database"
	"flightbooking/internal/pkg/jwt"
)

func setupTestService(t *testing.T) (*Service, *jwt.Service) {
	t.Helper()
	passwordCost = bcrypt.MinCost

	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn, database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	t.Cleanup(func() { _ = database.Close(db) })

	tokens := jwt.New("test-secret", time.Hour)
	return NewService(NewUserRepository(db), tokens), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens := setupTestService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterRequest{Email: " Asha@Example.com ", Password: "s3cret-pass", Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", reg.User.Email)
	assert.Equal(t, RoleCustomer, reg.User.Role)
	assert.NotEmpty(t, reg.Token)

	claims, err := tokens.ValidateToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, "customer", claims.Role)

	login, err := svc.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	me, err := svc.GetMe(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", me.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "password1", Name: "A"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "DUP@example.com", Password: "password2", Name: "B"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "ravi@example.com", Password: "password1", Name: "Ravi"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "ravi@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
