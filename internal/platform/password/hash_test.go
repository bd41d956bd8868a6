package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash_UsesCost10AndCompares(t *testing.T) {
	h, err := Hash("s3cr3t!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)

	assert.NoError(t, Compare(h, "s3cr3t!"))
}

func TestCompare_Mismatch(t *testing.T) {
	h, err := Hash("correct")
	require.NoError(t, err)

	tests := []struct {
		name  string
		hash  string
		plain string
	}{
		{name: "wrong password", hash: h, plain: "wrong"},
		{name: "empty password", hash: h, plain: ""},
		{name: "malformed hash", hash: "not-a-bcrypt-hash", plain: "correct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Compare(tt.hash, tt.plain), ErrMismatch)
		})
	}
}

func TestHash_SaltedDiffersPerCall(t *testing.T) {
	a, err := Hash("same")
	require.NoError(t, err)
	b, err := Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
