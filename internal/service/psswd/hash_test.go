package psswd

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	var hasher PasswordHash

	password := gofakeit.Password(true, true, true, true, false, 20)

	hash, err := hasher.HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// хеш необратим и не равен исходному паролю.
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.ComparePassword(password, hash))
	assert.False(t, hasher.ComparePassword(password+"x", hash))
	assert.False(t, hasher.ComparePassword("", hash))
}
