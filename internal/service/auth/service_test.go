package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/transkotakita/payroll-backend-go/internal/domain/auth"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/jwt"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/validator"
)

const testAdminPassword = "admin-password-123"

func newAuthService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	return NewAuthService(string(hash), jwtSvc), jwtSvc
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Password: testAdminPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginEmptyPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	require.Error(t, err)

	var errs validator.ValidationErrors
	assert.True(t, errors.As(err, &errs))
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, jwtSvc := newAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Password: testAdminPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.AccessToken))
	assert.True(t, jwtSvc.IsTokenRevoked(resp.AccessToken))
}

func TestLogoutEmptyToken(t *testing.T) {
	svc, _ := newAuthService(t)

	err := svc.Logout(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
