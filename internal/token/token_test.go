package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Issue(42)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Subject != "42" {
		t.Errorf("expected subject \"42\", got %q", claims.Subject)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", time.Hour).Issue(1)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = NewManager("secret-b", time.Hour).Verify(signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Issue(1)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := m.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	if _, err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
