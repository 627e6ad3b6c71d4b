package gate

// GateService is the employee-access gate: a deterrent passphrase check in
// front of a subset of views, not a security boundary. The unlocked state
// lives in a client-held gate token; the service only decides whether to
// mint one.
type GateService interface {
	// Unlock checks the passphrase and, on success, returns a gate token
	// for the client to persist. Returns ErrInvalidPassphrase otherwise.
	Unlock(passphrase string) (token string, err error)

	// IsUnlocked reports whether the presented token is a valid gate token
	IsUnlocked(token string) bool
}

type UnlockRequest struct {
	Passphrase string `json:"passphrase"`
}

type GateStatusResponse struct {
	Unlocked bool `json:"unlocked"`
}
