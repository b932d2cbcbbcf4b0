package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is deliberately above the library default so a verification
// takes tens of milliseconds on current hardware.
const bcryptCost = 12

// HashPassword creates a salted bcrypt hash of the plaintext password.
// Callers must invoke it exactly once per plaintext change; profile updates
// that do not touch the password never re-hash.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a plaintext password against a stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
