package common

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)

	require.Len(t, a, 32)
	require.Len(t, b, 32)
	assert.False(t, bytes.Equal(a, b), "two random buffers should differ")
	assert.Empty(t, GenerateRandByteArray(0))
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("secret")
	WipeByteArray(buf)
	assert.Equal(t, make([]byte, 6), buf)

	WipeByteArray(nil)
}

func TestSentinelErrorsSurviveWrapping(t *testing.T) {
	sentinels := []error{
		ErrDuplicateEmail,
		ErrInvalidCredentials,
		ErrNotAuthenticated,
		ErrNotFound,
		ErrNotAuthorized,
		ErrValidation,
		ErrStorage,
	}
	for _, s := range sentinels {
		wrapped := fmt.Errorf("outer: %w", s)
		assert.True(t, errors.Is(wrapped, s), s.Error())
	}
}
