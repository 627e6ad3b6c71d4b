package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken() (token string, expiresAt int64, err error)
	GenerateGateToken() (token string, err error)
	ValidateGateToken(tokenString string) error
	JWTAuth() *jwtauth.JWTAuth
	GateTokenCookie(token string) *http.Cookie
	ClearGateTokenCookie() *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

// GenerateAccessToken issues the admin session token. There is a single
// shared admin identity, so the token carries no subject beyond its type.
func (j *JWTService) GenerateAccessToken() (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"type": "access",
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}

// GenerateGateToken issues the employee-access gate token. Gate tokens do
// not expire; locking clears the cookie instead.
func (j *JWTService) GenerateGateToken() (token string, err error) {
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"type": "gate",
		"iat":  time.Now().Unix(),
	})
	return tokenString, err
}

// ValidateGateToken checks that tokenString is a well-formed gate token.
func (j *JWTService) ValidateGateToken(tokenString string) error {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "gate" {
		return jwt.ErrInvalidJWT()
	}

	return nil
}

func (j *JWTService) GateTokenCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     "employee_access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) ClearGateTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "employee_access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
