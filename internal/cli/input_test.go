package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(lines("  hello world  "), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	pipedStdin(t)

	var out bytes.Buffer
	pw, err := GetPassword(lines("s3cret!"), "Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret!"), pw)
	assert.Equal(t, "Enter password: ", out.String())
}

func TestGetPassword_Terminal(t *testing.T) {
	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })
	isTerminal = func(int) bool { return true }

	readPassword = func(int) ([]byte, error) { return []byte("hidden"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(rdr(""), "Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hidden"), pw)

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(rdr(""), "Enter password", &out)
	require.Error(t, err)
}

func TestGetLines(t *testing.T) {
	var out bytes.Buffer
	got, err := GetLines(lines("a", " b ", "", "ignored"), "URLs", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = GetLines(rdr("only"), "URLs", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, got)

	got, err = GetLines(rdr(""), "URLs", &out)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	for in, want := range map[string]bool{"y": true, "YES": true, "n": false, "": false, "maybe": false} {
		got, err := Confirm(lines(in), "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, "answer %q", in)
	}
}
