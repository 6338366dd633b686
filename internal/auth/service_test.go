package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"pos-terminal/internal/domain"
)

func testOperators(t *testing.T) []domain.Operator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("cashier123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return []domain.Operator{
		{ID: "1", Username: "cashier", Name: "Sarah Cashier", Role: domain.RoleCashier, PasswordHash: string(hash)},
	}
}

func TestLoginHappyPath(t *testing.T) {
	svc := New(testOperators(t), nil)

	operator, token, err := svc.Login("cashier", "cashier123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if operator.Name != "Sarah Cashier" {
		t.Fatalf("unexpected operator: %+v", operator)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	resolved, err := svc.Resolve(token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ID != operator.ID {
		t.Fatalf("resolved wrong operator: %+v", resolved)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := New(testOperators(t), nil)
	_, _, err := svc.Login("cashier", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := New(testOperators(t), nil)
	_, _, err := svc.Login("nobody", "cashier123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestResolveUnknownToken(t *testing.T) {
	svc := New(testOperators(t), nil)
	if _, err := svc.Resolve("bogus"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc := New(testOperators(t), nil)
	_, token, err := svc.Login("cashier", "cashier123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.Logout(token)
	if _, err := svc.Resolve(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected token revoked, got %v", err)
	}

	svc.Logout(token) // unknown tokens are ignored
}
