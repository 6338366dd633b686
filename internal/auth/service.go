// Package auth handles operator login and bearer-token sessions.
package auth

import (
	"errors"
	"io"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"pos-terminal/internal/domain"
)

var (
	// ErrInvalidCredentials is returned when username/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service validates operator credentials and tracks their session tokens.
// The operator set is fixed at construction; account administration is not
// part of the terminal.
type Service struct {
	logger    *log.Logger
	operators []domain.Operator
	tokens    *tokenManager
	tokenTTL  time.Duration
}

func New(operators []domain.Operator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		logger:    logger,
		operators: append([]domain.Operator(nil), operators...),
		tokens:    newTokenManager(),
		tokenTTL:  12 * time.Hour,
	}
}

// Login checks the credentials and issues a session token on success.
func (s *Service) Login(username, password string) (*domain.Operator, string, error) {
	for _, op := range s.operators {
		if op.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
			return nil, "", ErrInvalidCredentials
		}
		token, err := s.tokens.Issue(op.ID, s.tokenTTL)
		if err != nil {
			return nil, "", err
		}
		cp := op
		s.logger.Printf("auth: operator %s logged in", op.Username)
		return &cp, token, nil
	}
	return nil, "", ErrInvalidCredentials
}

// Resolve returns the operator bound to a valid session token.
func (s *Service) Resolve(token string) (*domain.Operator, error) {
	operatorID, ok := s.tokens.Validate(token)
	if !ok {
		return nil, ErrInvalidToken
	}
	for _, op := range s.operators {
		if op.ID == operatorID {
			cp := op
			return &cp, nil
		}
	}
	return nil, ErrInvalidToken
}

// Logout revokes the token. Unknown tokens are ignored.
func (s *Service) Logout(token string) {
	s.tokens.Revoke(token)
}
