package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleTextTrims(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("  hello world  \n"), "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleTextPartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("no newline"), "", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(reader(""), "", &out)
	require.Error(t, err)
}

func TestGetMultilineJoinsUntilBlank(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(reader("first line\nsecond line\n\nignored\n"), "Detail", &out)
	require.NoError(t, err)
	require.Equal(t, "first line\nsecond line", got)
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer
	got, err := GetFloat(reader("298.4\n"), "Air temp", &out)
	require.NoError(t, err)
	require.InDelta(t, 298.4, got, 0.001)

	got, err = GetFloat(reader("\n"), "Air temp", &out)
	require.NoError(t, err)
	require.Zero(t, got)

	_, err = GetFloat(reader("warm\n"), "Air temp", &out)
	require.ErrorContains(t, err, `not a number: "warm"`)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer
	got, err := GetInt(reader("1500\n"), "Speed", &out)
	require.NoError(t, err)
	require.Equal(t, 1500, got)

	_, err = GetInt(reader("1500.5\n"), "Speed", &out)
	require.ErrorContains(t, err, "not an integer")
}

func TestGetPasswordUsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter22"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "hunter22", string(pw))
	require.Contains(t, out.String(), "Enter password:")
}

func TestGetPasswordError(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}
