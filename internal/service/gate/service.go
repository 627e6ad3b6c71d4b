package gate

import (
	"crypto/subtle"
	"fmt"

	"github.com/transkotakita/payroll-backend-go/internal/domain/gate"
	"github.com/transkotakita/payroll-backend-go/internal/pkg/jwt"
)

type GateServiceImpl struct {
	passphrase string
	jwtService jwt.Service
}

func NewGateService(passphrase string, jwtService jwt.Service) gate.GateService {
	return &GateServiceImpl{
		passphrase: passphrase,
		jwtService: jwtService,
	}
}

// Unlock implements gate.GateService.
func (s *GateServiceImpl) Unlock(passphrase string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(passphrase), []byte(s.passphrase)) != 1 {
		return "", gate.ErrInvalidPassphrase
	}

	token, err := s.jwtService.GenerateGateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate gate token: %w", err)
	}

	return token, nil
}

// IsUnlocked implements gate.GateService.
func (s *GateServiceImpl) IsUnlocked(token string) bool {
	if token == "" {
		return false
	}
	return s.jwtService.ValidateGateToken(token) == nil
}
