package security

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Payload is the encrypted body of a token.
type Payload struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"sub"`
	Scope     string    `json:"scope"`
	IssuedAt  time.Time `json:"iat"`
	ExpiredAt time.Time `json:"exp"`
}

func NewPayload(subject string, duration time.Duration, scope string) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Payload{
		ID:        tokenID,
		Subject:   subject,
		Scope:     scope,
		IssuedAt:  now,
		ExpiredAt: now.Add(duration),
	}, nil
}

func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrExpiredToken
	}
	return nil
}
