package service

import "golang.org/x/crypto/bcrypt"

// hashCost matches the cost the catalog has always used for stored hashes.
const hashCost = bcrypt.DefaultCost

// HashPassword produces a salted one-way digest of the plaintext.
func HashPassword(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether plaintext matches the stored digest. The
// comparison is constant-time; a malformed digest verifies as false rather
// than erroring.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
