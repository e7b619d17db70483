package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/prism-backend/internal/data/repos/testutil"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testutil.NewLogger(t), "test-secret", time.Hour)
	id := uuid.New()

	token, err := svc.Mint(id)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	got, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != id {
		t.Errorf("parsed id = %s, want %s", got, id)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	log := testutil.NewLogger(t)
	minter := NewTokenService(log, "secret-a", time.Hour)
	verifier := NewTokenService(log, "secret-b", time.Hour)

	token, err := minter.Mint(uuid.New())
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("token signed with different secret accepted")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	svc := NewTokenService(testutil.NewLogger(t), "test-secret", -time.Minute)
	token, err := svc.Mint(uuid.New())
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := svc.Parse(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	svc := NewTokenService(testutil.NewLogger(t), "test-secret", time.Hour)
	if _, err := svc.Parse("not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
