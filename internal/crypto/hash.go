package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type HashCost = int

const (
	// DefaultHashCost represents the default
	// hashing cost for any hashing algorithm.
	DefaultHashCost HashCost = iota

	// QuickHashCost represents the quickest
	// hashing cost for any hashing algorithm,
	// useful for tests only.
	QuickHashCost HashCost = iota

	// BCrypt hashed passwords have a 72 character limit
	MaxPasswordLength = 72
)

// PasswordHashCost is the current password hashing cost
// for all new hashes generated with HashPassword.
var PasswordHashCost = DefaultHashCost

// HashPassword generates a bcrypt hash from a password, using
// PasswordHashCost.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", fmt.Errorf("password cannot be longer than %d characters", MaxPasswordLength)
	}

	var hashCost int
	switch PasswordHashCost {
	case QuickHashCost:
		hashCost = bcrypt.MinCost

	default:
		hashCost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
