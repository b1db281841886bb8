package crypto

import (
	"strings"
	"testing"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword(2): %v", err)
	}
	if h1 == "" || h2 == "" {
		t.Fatalf("empty hash")
	}
	// bcrypt embeds a random salt, so two hashes of the same password differ
	if h1 == h2 {
		t.Fatalf("two bcrypt hashes of the same password are equal")
	}
	if !strings.HasPrefix(h1, "$2a$") {
		t.Fatalf("unexpected hash format: %q", h1)
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword("correct horse battery staple", hash) {
		t.Fatalf("VerifyPassword: expected true for correct password")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatalf("VerifyPassword: expected false for wrong password")
	}
	if VerifyPassword("", hash) {
		t.Fatalf("VerifyPassword: expected false for empty password")
	}
	if VerifyPassword("correct horse battery staple", "not-a-hash") {
		t.Fatalf("VerifyPassword: expected false for malformed hash")
	}
}
