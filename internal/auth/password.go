package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes passwords with a bcrypt cost fixed at construction.
// Costs outside bcrypt's valid range fall back to the library default.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher builds a hasher for the given cost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of a plaintext password.
func (h PasswordHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a plaintext password against its stored hash.
func VerifyPassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
