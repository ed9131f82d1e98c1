package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_EmptyPassword(t *testing.T) {
	hash, err := HashPassword("", 4)

	assert.ErrorIs(t, err, ErrPasswordRequired)
	assert.Empty(t, hash)
}

func TestHashPassword_TooLongPassword(t *testing.T) {
	hash, err := HashPassword(strings.Repeat("a", 65), 4)

	assert.ErrorIs(t, err, ErrPasswordMaxLen64)
	assert.Empty(t, hash)
}

func TestHashPassword_MaxLenPassword(t *testing.T) {
	hash, err := HashPassword(strings.Repeat("a", 64), 4)

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
}

func TestHashPassword_ValidPassword(t *testing.T) {
	password := "testpass123"

	hash, err := HashPassword(password, 4)
	assert.NoError(t, err)

	assert.Contains(t, hash, "$2a$")
	assert.Contains(t, hash, "04$")

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	assert.NoError(t, err)
}

func TestHashPassword_BcryptError(t *testing.T) {
	hash, err := HashPassword("testpass", 32)

	assert.ErrorIs(t, err, ErrPasswordGenerate)
	assert.Empty(t, hash)
}

func TestCheckPasswordHash_Valid(t *testing.T) {
	hash, err := HashPassword("testpass", 4)
	assert.NoError(t, err)

	assert.True(t, CheckPasswordHash("testpass", hash))
}

func TestCheckPasswordHash_Invalid(t *testing.T) {
	hash, _ := HashPassword("testpass", 4)

	assert.False(t, CheckPasswordHash("wrongpass", hash))
}
