package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	signed, err := svc.Issue("64f1b2a3c4d5e6f708091a0b")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	userID, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != "64f1b2a3c4d5e6f708091a0b" {
		t.Errorf("user id: got %q", userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService([]byte("test-secret"), -time.Minute)

	signed, err := svc.Issue("64f1b2a3c4d5e6f708091a0b")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := NewService([]byte("secret-a"), time.Hour).Issue("64f1b2a3c4d5e6f708091a0b")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewService([]byte("secret-b"), time.Hour).Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c", "Bearer xyz"} {
		if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	// alg "none" must be rejected even with a matching claim layout.
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "64f1b2a3c4d5e6f708091a0b",
		"exp":     jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for alg none, got %v", err)
	}
}

func TestVerify_MissingUserID(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewService(secret, time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for missing user_id, got %v", err)
	}
}
