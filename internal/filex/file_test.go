package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSubDirCreates(t *testing.T) {
	tmp := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })

	got, err := EnsureSubDir("exports")
	require.NoError(t, err)

	info, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, "exports", filepath.Base(got))
}

func TestEnsureSubDirIdempotent(t *testing.T) {
	tmp := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })

	first, err := EnsureSubDir("exports")
	require.NoError(t, err)
	second, err := EnsureSubDir("exports")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
