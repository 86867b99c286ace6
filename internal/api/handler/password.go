package handler

import "golang.org/x/crypto/bcrypt"

// hashPassword hashes a raw password with bcrypt at the default cost.
func hashPassword(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// verifyPassword reports whether raw matches the stored bcrypt hash. It is
// injected into the authentication use case as its password verifier.
func verifyPassword(raw, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
