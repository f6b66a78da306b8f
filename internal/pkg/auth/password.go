package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for password digests.
const BcryptCost = 12

// HashPassword returns the bcrypt digest of a plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
// A malformed digest verifies as false rather than erroring out.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
