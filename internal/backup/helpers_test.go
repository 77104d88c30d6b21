package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func realTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestResolveDir(t *testing.T) {
	root := realTempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Dropbox", "KeePass"), 0o755))

	got, err := ResolveDir(root, "Dropbox", "KeePass")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "Dropbox", "KeePass"), got)
}

func TestResolveDirFollowsSymlinks(t *testing.T) {
	root := realTempDir(t)
	target := filepath.Join(root, "elsewhere", "sync")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "KeePass"), 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "Dropbox")))

	got, err := ResolveDir(root, "Dropbox", "KeePass")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(target, "KeePass"), got)
}

func TestResolveDirRelativeRoot(t *testing.T) {
	root := realTempDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "KeePass-backups"), 0o755))
	chdir(t, root)

	got, err := ResolveDir(".", "KeePass-backups")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(got))
	require.Equal(t, filepath.Join(root, "KeePass-backups"), got)
}

func TestResolveDirFailures(t *testing.T) {
	root := realTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "plain"), []byte("x"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "broken")))

	tests := []struct {
		name  string
		nodes []string
	}{
		{name: "missing", nodes: []string{"Dropbox", "KeePass"}},
		{name: "not a directory", nodes: []string{"plain"}},
		{name: "broken link", nodes: []string{"broken"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveDir(root, tt.nodes...)
			require.ErrorIs(t, err, ErrResolvePath)
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Setenv("PWD", dir)
	t.Cleanup(func() { _ = os.Chdir(old) })
}
