package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/transkotakita/payroll-backend-go/internal/domain/auth"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	adminPasswordHash string
	jwtService        jwt.Service
}

func NewAuthService(adminPasswordHash string, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		adminPasswordHash: adminPasswordHash,
		jwtService:        jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken()
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}

	s.jwtService.RevokeToken(token)
	return nil
}
