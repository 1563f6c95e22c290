package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyDefaultPassword(t *testing.T) {
	setupTestDB(t)

	valid, err := VerifyAdminPassword("admin123")
	assert.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyAdminPassword("nope")
	assert.NoError(t, err)
	assert.False(t, valid)

	configured, err := AdminPasswordConfigured()
	assert.NoError(t, err)
	assert.False(t, configured)
}

func TestChangeAdminPassword(t *testing.T) {
	setupTestDB(t)

	assert.NoError(t, ChangeAdminPassword("admin123", "secret42"))

	valid, err := VerifyAdminPassword("secret42")
	assert.NoError(t, err)
	assert.True(t, valid)

	// The default stops matching once a real password exists.
	valid, err = VerifyAdminPassword("admin123")
	assert.NoError(t, err)
	assert.False(t, valid)

	configured, err := AdminPasswordConfigured()
	assert.NoError(t, err)
	assert.True(t, configured)

	// A second change goes through the newest password.
	assert.NoError(t, ChangeAdminPassword("secret42", "secret43"))
	valid, err = VerifyAdminPassword("secret43")
	assert.NoError(t, err)
	assert.True(t, valid)
}

func TestChangeAdminPasswordWrongCurrent(t *testing.T) {
	setupTestDB(t)
	assert.ErrorIs(t, ChangeAdminPassword("wrong", "secret42"), ErrWrongPassword)
}

func TestChangeAdminPasswordTooShort(t *testing.T) {
	setupTestDB(t)
	assert.ErrorIs(t, ChangeAdminPassword("admin123", "abc"), ErrPasswordTooShort)
}
