package gate

import "errors"

// Gate domain errors
var (
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	ErrLocked            = errors.New("employee access is locked")
)
