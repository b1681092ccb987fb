package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, VerifyPassword("secret123", hash))
	assert.Error(t, VerifyPassword("wrong-password", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same password differ
	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_KnownHash(t *testing.T) {
	// Hash from the static demo user directory (password "anonymous")
	const knownHash = "$2b$12$3.yfiWhwkE1/C2/g60w2Ye.F/qIQazHsahu5uUtHdO5Jvo6W7A01O"

	assert.NoError(t, VerifyPassword("anonymous", knownHash))
	assert.Error(t, VerifyPassword("not-anonymous", knownHash))
}

func TestDummyVerify(t *testing.T) {
	// Must not panic regardless of input; result is discarded
	DummyVerify("")
	DummyVerify("anything")
}
