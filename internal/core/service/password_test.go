package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Secret123" {
		t.Fatalf("expected password to be hashed")
	}

	match, err := hasher.Compare("Secret123", hash)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if !match {
		t.Fatalf("expected hash to match original password")
	}
}

func TestPasswordHasher_Mismatch(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	match, err := hasher.Compare("Wrong456", hash)
	if err != nil {
		t.Fatalf("wrong password must not be an error, got: %v", err)
	}
	if match {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	if _, err := hasher.Compare("Secret123", "not-a-bcrypt-hash"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	hasher := NewPasswordHasher(99)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", hasher.cost)
	}
}
