package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)

	require.NoError(t, VerifyPassword(hash, "secret"))
	require.Error(t, VerifyPassword(hash, "wrong"))
}

func TestPasswordHasherClampsInvalidCost(t *testing.T) {
	hasher := NewPasswordHasher(99)
	require.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewPasswordHasher(-1)
	require.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
