package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	t.Run("same plaintext yields distinct hashes", func(t *testing.T) {
		h := NewBcryptHasher(bcrypt.MinCost)

		first, err := h.Hash("password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := h.Hash("password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first == second {
			t.Error("two hashes of the same plaintext should differ (per-call salt)")
		}
		if !h.Verify("password123", first) {
			t.Error("first hash should verify")
		}
		if !h.Verify("password123", second) {
			t.Error("second hash should verify")
		}
	})

	t.Run("hash is never the plaintext", func(t *testing.T) {
		h := NewBcryptHasher(bcrypt.MinCost)

		hashed, err := h.Hash("password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hashed == "password123" {
			t.Error("hash must not equal the plaintext")
		}
	})

	t.Run("out-of-range cost falls back to default", func(t *testing.T) {
		h := NewBcryptHasher(99)

		hashed, err := h.Hash("password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cost, err := bcrypt.Cost([]byte(hashed))
		if err != nil {
			t.Fatalf("failed to read cost: %v", err)
		}
		if cost != bcrypt.DefaultCost {
			t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
		}
	})
}

func TestBcryptHasher_Verify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("correct-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("matching plaintext verifies", func(t *testing.T) {
		if !h.Verify("correct-password", hashed) {
			t.Error("expected verification to succeed")
		}
	})

	t.Run("different plaintext fails", func(t *testing.T) {
		if h.Verify("wrong-password", hashed) {
			t.Error("expected verification to fail")
		}
	})

	t.Run("garbage hash fails", func(t *testing.T) {
		if h.Verify("correct-password", "not-a-bcrypt-hash") {
			t.Error("expected verification to fail for malformed hash")
		}
	})
}
