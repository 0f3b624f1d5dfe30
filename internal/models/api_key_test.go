package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeySecretRoundtrip(t *testing.T) {
	key := &APIKey{KeyID: "tc_test"}

	require.NoError(t, key.HashSecret("super-secret"))
	assert.NotEqual(t, "super-secret", key.SecretHash, "secret must not be stored in the clear")

	assert.True(t, key.CheckSecret("super-secret"))
	assert.False(t, key.CheckSecret("wrong-secret"))
	assert.False(t, key.CheckSecret(""))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleUser))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
