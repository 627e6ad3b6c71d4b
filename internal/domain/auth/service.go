package auth

import "context"

// AuthService handles the single shared admin credential
type AuthService interface {
	// Login checks the admin password and issues an access token
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Logout revokes the presented access token
	Logout(ctx context.Context, token string) error
}
