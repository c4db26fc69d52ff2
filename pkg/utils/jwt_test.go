package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := CreateToken(userID, "grace")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID.String() {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID.String())
	}
	if claims.Username != "grace" {
		t.Errorf("Username = %q, want %q", claims.Username, "grace")
	}
}

func TestTokenSecretReadAtSigningTime(t *testing.T) {
	userID := uuid.New()

	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateToken(userID, "grace")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ValidateToken(token); err != nil {
		t.Fatalf("ValidateToken under same secret: %v", err)
	}

	// Rotating the secret invalidates previously issued tokens.
	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ValidateToken(token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials after secret rotation", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in plain text")
	}
	if err := ComparePasswords(hash, "correct horse battery staple"); err != nil {
		t.Errorf("ComparePasswords with correct password: %v", err)
	}
	if err := ComparePasswords(hash, "wrong password"); err == nil {
		t.Error("ComparePasswords accepted a wrong password")
	}
}
