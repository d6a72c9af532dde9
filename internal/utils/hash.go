package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash. The salt is generated per
// call and embedded in the returned record, so hashing the same password
// twice yields different strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether candidate matches hash. A mismatch is
// a false return, not an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
