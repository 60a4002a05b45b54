package security

import "time"

const TokenScopeAdmin = "admin"

// Maker issues and verifies bearer tokens.
type Maker interface {
	// CreateToken issues a token for subject valid for duration.
	CreateToken(subject string, duration time.Duration, scope string) (string, *Payload, error)

	// VerifyToken returns the payload of a valid, unexpired token.
	VerifyToken(token string) (*Payload, error)
}
