package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestHMACService_RoundTrip(t *testing.T) {
	s := NewHMACService("test-secret")

	tok, err := s.GenerateToken("user-42", time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Fatalf("user id = %q, want user-42", claims.UserID)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	s := NewHMACService("test-secret")
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := s.GenerateToken("user-42", time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	s.now = time.Now
	if _, err := s.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	issuer := NewHMACService("secret-a")
	verifier := NewHMACService("secret-b")

	tok, _ := issuer.GenerateToken("user-42", time.Hour)
	if _, err := verifier.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_RejectsEmptyUserID(t *testing.T) {
	s := NewHMACService("test-secret")
	if _, err := s.GenerateToken("  ", time.Hour); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
