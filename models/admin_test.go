package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminPassword(t *testing.T) {
	_, err := HashPassword("12345")
	assert.Equal(t, ErrPasswordTooShort, err)

	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	a := Admin{Email: "owner@cafe.test", PasswordHash: hash}
	assert.True(t, a.CheckPassword("s3cret!"))
	assert.False(t, a.CheckPassword("wrong"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "owner@cafe.test", NormalizeEmail("  Owner@Cafe.TEST "))
}

func TestRejectMissingAdmin(t *testing.T) {
	assert.False(t, RejectMissingAdmin("missing-admin"))
	assert.False(t, RejectMissingAdmin(""))

	cost, err := bcrypt.Cost(missingAdminHash())
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
