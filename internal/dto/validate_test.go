package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("jorge@gmail.com"))
	assert.NoError(t, ValidateEmail("  jorge@gmail.com "))
	assert.ErrorIs(t, ValidateEmail(""), ErrEmailRequired)
	assert.ErrorIs(t, ValidateEmail("   "), ErrEmailRequired)
	for _, bad := range []string{"nope", "a@", "@b.co", "Ann <a@b.co>"} {
		assert.ErrorIs(t, ValidateEmail(bad), ErrEmailInvalid, bad)
	}
}

func TestValidateNewPassword_CountsCharacters(t *testing.T) {
	assert.NoError(t, ValidateNewPassword("secret"))
	assert.ErrorIs(t, ValidateNewPassword(""), ErrPasswordRequired)
	assert.ErrorIs(t, ValidateNewPassword("     "), ErrPasswordRequired)
	assert.ErrorIs(t, ValidateNewPassword("12345"), ErrPasswordTooShort)

	// длина считается в символах, а не в байтах
	assert.ErrorIs(t, ValidateNewPassword("日本語"), ErrPasswordTooShort)
	assert.NoError(t, ValidateNewPassword("contraseñaß"))
	assert.NoError(t, ValidateNewPassword("日本語日本語"))
}
