// Package password はbcryptによるパスワードのハッシュ化と検証を提供します。
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes and verifies passwords with bcrypt. Every hash gets
// its own random salt, so hashing the same plaintext twice yields two
// different values.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher はBcryptHasherの新しいインスタンスを生成します。
// costが範囲外の場合はbcrypt.DefaultCostを使用します。
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the salted bcrypt hash of plain. It fails only on internal
// bcrypt errors; the plaintext is never returned or stored.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plain matches hashed. bcrypt re-derives the hash
// with the salt and cost embedded in hashed and compares in constant time,
// so a mismatch leaks nothing about where the comparison diverged.
func (h *BcryptHasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
