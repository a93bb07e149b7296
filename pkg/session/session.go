// Package session models the readiness signal that gates polling. The core
// only ever asks "signed-in or not": Loading while the token is still being
// resolved, Ready when it validated, Absent when there is none or it failed
// validation.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type State int

const (
	Loading State = iota
	Ready
	Absent
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Absent:
		return "absent"
	default:
		return "unknown"
	}
}

type Claims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Session starts in Loading and resolves exactly once.
type Session struct {
	secret []byte

	mu       sync.Mutex
	state    State
	resolved chan struct{}
}

func New(secret string) *Session {
	return &Session{
		secret:   []byte(secret),
		state:    Loading,
		resolved: make(chan struct{}),
	}
}

// Resolve validates the token and settles the session. Later calls do not
// move a settled session.
func (s *Session) Resolve(token string) State {
	next := Absent
	if token != "" {
		if _, err := s.ParseValidate(token); err == nil {
			next = Ready
		}
	}

	s.mu.Lock()
	if s.state == Loading {
		s.state = next
		close(s.resolved)
	}
	st := s.state
	s.mu.Unlock()
	return st
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// WaitReady blocks until the session settles and reports whether it settled
// Ready. A cancelled ctx reports false.
func (s *Session) WaitReady(ctx context.Context) bool {
	select {
	case <-s.resolved:
		return s.State() == Ready
	case <-ctx.Done():
		return false
	}
}

func (s *Session) ParseValidate(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	return c, nil
}

// CreateAccessToken signs a token against the session secret.
func (s *Session) CreateAccessToken(sub, role string, ttl time.Duration) (string, error) {
	claims := Claims{Sub: sub, Role: role, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl))}}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
