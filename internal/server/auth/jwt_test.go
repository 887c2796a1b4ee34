package auth

import (
	"testing"
	"time"
)

func TestToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("cookie", secret, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	space, err := GetSpaceFromToken(token, secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if space != "cookie" {
		t.Fatalf("want cookie, got %q", space)
	}
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("cookie", []byte("right"), time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := GetSpaceFromToken(token, []byte("wrong")); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("cookie", secret, -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = GetSpaceFromToken(token, secret)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestToken_Garbage(t *testing.T) {
	if _, err := GetSpaceFromToken("not-a-token", []byte("s")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPasscode_HashAndCheck(t *testing.T) {
	hash, err := HashPasscode("sweetheart")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !CheckPasscode(hash, "sweetheart") {
		t.Fatal("expected passcode to match")
	}
	if CheckPasscode(hash, "stranger") {
		t.Fatal("expected mismatch for wrong passcode")
	}
}
