package auth

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash = %q, want argon2id prefix", hash)
	}

	ok, err := CheckPassword("s3cret-password", hash)
	if err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if !ok {
		t.Error("correct password should verify")
	}

	ok, err = CheckPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if ok {
		t.Error("wrong password should not verify")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if _, err := CheckPassword("x", "not-a-hash"); err == nil {
		t.Error("expected error for malformed hash")
	}
	if _, err := CheckPassword("x", "$bcrypt$v=19$m=1,t=1,p=1$a$b"); err == nil {
		t.Error("expected error for unsupported hash type")
	}
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if NeedsRehash(hash) {
		t.Error("fresh hash should not need rehash")
	}
	if !NeedsRehash("$argon2id$v=19$m=4096,t=3,p=1$c2FsdA$aGFzaA") {
		t.Error("hash with old parameters should need rehash")
	}
	if !NeedsRehash("garbage") {
		t.Error("malformed hash should need rehash")
	}
}
