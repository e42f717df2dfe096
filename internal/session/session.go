package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/TemirB/internetmarke/internal/domain"
)

// Session holds the state of one authenticated portal user. The token is set
// if and only if authentication succeeded.
type Session struct {
	mu            sync.RWMutex
	credentials   domain.Credentials
	token         string
	balance       int64
	termsAccepted bool
	infoMessage   string
	orderIDs      []string
}

func New(credentials domain.Credentials) *Session {
	return &Session{credentials: credentials}
}

func (s *Session) Credentials() domain.Credentials {
	return s.credentials
}

// SetAuthResult stores the outcome of a successful authentication.
func (s *Session) SetAuthResult(token string, balance int64, termsAccepted bool, infoMessage string) error {
	if strings.TrimSpace(s.credentials.Username) == "" {
		return fmt.Errorf("%w: session has no credentials", domain.ErrInvalidState)
	}
	if token == "" {
		return fmt.Errorf("%w: empty token", domain.ErrInvalidState)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.balance = balance
	s.termsAccepted = termsAccepted
	s.infoMessage = infoMessage
	return nil
}

// UpdateBalance overwrites the balance with the value reported by the service.
func (s *Session) UpdateBalance(amount int64) {
	s.mu.Lock()
	s.balance = amount
	s.mu.Unlock()
}

func (s *Session) RecordOrderID(id string) {
	s.mu.Lock()
	s.orderIDs = append(s.orderIDs, id)
	s.mu.Unlock()
}

func (s *Session) RequireToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", domain.ErrUnauthenticated
	}
	return s.token, nil
}

func (s *Session) Authenticated() bool {
	_, err := s.RequireToken()
	return err == nil
}

func (s *Session) Balance() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance
}

func (s *Session) TermsAccepted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.termsAccepted
}

func (s *Session) InfoMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.infoMessage
}

// OrderIDs returns a copy of the order id history in issue order.
func (s *Session) OrderIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.orderIDs))
	copy(out, s.orderIDs)
	return out
}
