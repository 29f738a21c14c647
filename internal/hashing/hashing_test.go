package hashing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/estate/internal/hashing"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := hashing.NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, h.Compare(hash, "correct horse"))
	assert.False(t, h.Compare(hash, "wrong horse"))
	assert.False(t, h.Compare("not-a-hash", "correct horse"))
}

func TestBcrypt_RejectsOverlongInput(t *testing.T) {
	h := hashing.NewBcrypt(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}
