package backup

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCopy(t *testing.T) {
	data := bytes.Repeat([]byte{0x03, 0xd9, 0xa2, 0x9a, 0x65}, 20)
	var dst bytes.Buffer

	n, err := Copy(&dst, bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, dst.Bytes())
}

func TestCopyEmpty(t *testing.T) {
	var dst bytes.Buffer
	n, err := Copy(&dst, bytes.NewReader(nil))
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestCopyReadError(t *testing.T) {
	var dst bytes.Buffer
	_, err := Copy(&dst, iotest.ErrReader(errors.New("bad sector")))
	require.ErrorIs(t, err, ErrCopy)
	require.Zero(t, dst.Len())
}

func TestCopyWriteError(t *testing.T) {
	_, err := Copy(failingWriter{}, bytes.NewReader([]byte("data")))
	require.ErrorIs(t, err, ErrCopy)
}

func TestOpenSourceMissing(t *testing.T) {
	_, err := OpenSource(filepath.Join(t.TempDir(), "Database.kdb"))
	require.ErrorIs(t, err, ErrOpenSource)
}

func TestCreateDestinationTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Database.kdb")
	require.NoError(t, os.WriteFile(path, []byte("previous contents"), 0o600))

	f, err := CreateDestination(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("new"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
}

func TestCreateDestinationMissingDir(t *testing.T) {
	_, err := CreateDestination(filepath.Join(t.TempDir(), "missing", "Database.kdb"))
	require.ErrorIs(t, err, ErrOpenDestination)
}
