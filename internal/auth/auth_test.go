package auth_test

import (
	"errors"
	"strings"
	"testing"

	"payroll-tracker/internal/auth"
)

func TestHashAndVerifyPIN(t *testing.T) {
	hash, err := auth.HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash %q missing argon2id prefix", hash)
	}

	ok, err := auth.VerifyPIN(hash, "1234")
	if err != nil {
		t.Fatalf("VerifyPIN: %v", err)
	}
	if !ok {
		t.Error("expected matching PIN to verify")
	}

	ok, err = auth.VerifyPIN(hash, "4321")
	if err != nil {
		t.Fatalf("VerifyPIN: %v", err)
	}
	if ok {
		t.Error("expected mismatched PIN to fail")
	}
}

func TestHashPINIsSalted(t *testing.T) {
	a, err := auth.HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN: %v", err)
	}
	b, err := auth.HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same PIN should differ by salt")
	}
}

func TestVerifyPINMalformed(t *testing.T) {
	malformed := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$c2FsdA",
	}

	for _, encoded := range malformed {
		_, err := auth.VerifyPIN(encoded, "1234")
		if !errors.Is(err, auth.ErrMalformedHash) {
			t.Errorf("VerifyPIN(%q) error = %v, want ErrMalformedHash", encoded, err)
		}
	}
}
