package auth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type tokenMeta struct {
	OperatorID string
	ExpiresAt  time.Time
}

// tokenManager issues and validates opaque bearer tokens in memory. Tokens
// die with the process; operators simply log in again after a restart.
type tokenManager struct {
	mu     sync.Mutex
	tokens map[string]tokenMeta
}

func newTokenManager() *tokenManager {
	return &tokenManager{tokens: make(map[string]tokenMeta)}
}

func (m *tokenManager) Issue(operatorID string, ttl time.Duration) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = tokenMeta{
		OperatorID: operatorID,
		ExpiresAt:  time.Now().Add(ttl),
	}
	return token, nil
}

func (m *tokenManager) Validate(token string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meta, ok := m.tokens[token]
	if !ok {
		return "", false
	}
	if time.Now().After(meta.ExpiresAt) {
		delete(m.tokens, token)
		return "", false
	}
	return meta.OperatorID, true
}

func (m *tokenManager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
