package oidc

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// StateTTL bounds how long a login round trip may take.
const StateTTL = 10 * time.Minute

const stateSubject = "google-login"

// ErrInvalidState is returned for a missing, forged or expired state parameter.
var ErrInvalidState = errors.New("invalid oauth state")

// stateSigner issues self-contained state values, so the callback can land on
// any instance of either runtime without shared session storage.
type stateSigner struct {
	secret []byte
	now    func() time.Time
}

func newStateSigner(secret string) *stateSigner {
	return &stateSigner{secret: []byte(secret), now: time.Now}
}

func (s *stateSigner) Issue() (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   stateSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(StateTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *stateSigner) Verify(state string) error {
	if state == "" {
		return ErrInvalidState
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidState
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithSubject(stateSubject))
	if err != nil || !token.Valid {
		return ErrInvalidState
	}
	return nil
}
