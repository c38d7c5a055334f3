package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier([]StaticCredential{
		{Username: "admin", Password: "s3cret", Perms: []string{"orders.read", "orders.write"}},
		{Username: "viewer", Password: "view", Perms: []string{"orders.read"}},
		{Username: "former", Password: "gone", Disabled: true},
	})

	acc, ok := v.Verify("admin", "s3cret")
	require.True(t, ok)
	assert.Equal(t, "admin", acc.Username)
	assert.Equal(t, []string{"orders.read", "orders.write"}, acc.Perms)

	_, ok = v.Verify("admin", "wrong")
	assert.False(t, ok)

	_, ok = v.Verify("nobody", "s3cret")
	assert.False(t, ok)

	_, ok = v.Verify("former", "gone")
	assert.False(t, ok, "disabled accounts never verify")
}
