package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtract(t *testing.T) {
	token, err := GenerateToken("Kean", "barber", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	subject, role, err := ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims failed: %v", err)
	}
	if subject != "Kean" || role != "barber" {
		t.Fatalf("claims = %s/%s, want Kean/barber", subject, role)
	}
}

func TestExtractClaims_RejectsExpired(t *testing.T) {
	token, err := GenerateToken("Kean", "barber", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, _, err := ExtractClaims(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestExtractClaims_RejectsGarbage(t *testing.T) {
	if _, _, err := ExtractClaims("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestHashToken_Deterministic(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	if a != b {
		t.Fatal("hash must be deterministic")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(a))
	}
	if a == HashToken("abd") {
		t.Fatal("different tokens must hash differently")
	}
}
