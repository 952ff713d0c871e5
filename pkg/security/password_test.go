package security

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	h := NewHasher()

	hash, err := h.GenerateFromPassword("pw123")
	if err != nil {
		t.Fatalf("GenerateFromPassword error: %v", err)
	}
	if hash == "pw123" || hash == "" {
		t.Fatalf("hash must not be empty or equal to the plaintext")
	}

	ok, err := h.VerifyPasswd("pw123", hash)
	if err != nil {
		t.Fatalf("VerifyPasswd error: %v", err)
	}
	if !ok {
		t.Fatalf("correct password rejected")
	}

	ok, err = h.VerifyPasswd("wrong", hash)
	if err != nil {
		t.Fatalf("VerifyPasswd error: %v", err)
	}
	if ok {
		t.Fatalf("wrong password accepted")
	}
}

func TestVerifyPasswd_BrokenHash(t *testing.T) {
	t.Parallel()

	h := NewHasher()

	if _, err := h.VerifyPasswd("pw", "not-a-bcrypt-hash"); err == nil {
		t.Fatalf("expected error for broken hash, got nil")
	}
}

func TestHashesAreSalted(t *testing.T) {
	t.Parallel()

	h := NewHasher()

	h1, err := h.GenerateFromPassword("same-password")
	if err != nil {
		t.Fatalf("GenerateFromPassword error: %v", err)
	}
	h2, err := h.GenerateFromPassword("same-password")
	if err != nil {
		t.Fatalf("GenerateFromPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}
}
