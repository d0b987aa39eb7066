package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword salts and hashes with bcrypt at DefaultCost (10 rounds).
func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
