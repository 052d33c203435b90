package helpers

import "golang.org/x/crypto/bcrypt"

// PasswordCost matches the cost the LightBnB seed hashes were generated with
// on sign-up.
const PasswordCost = 12

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain matches the bcrypt hash. Any
// cost is accepted, so seed rows hashed at cost 10 still verify.
func CompareHashAndPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
