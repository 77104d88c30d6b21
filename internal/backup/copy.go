package backup

import (
	"fmt"
	"io"
	"os"
)

// destinationPerm keeps backups of the password database private to the user.
const destinationPerm = 0o600

// OpenSource opens path read-only.
func OpenSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenSource, err)
	}
	return f, nil
}

// CreateDestination opens path write-only, creating or truncating it.
func CreateDestination(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, destinationPerm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDestination, err)
	}
	return f, nil
}

// Copy reads the whole of src into memory and writes it to dst in a single
// call. It returns the number of bytes written.
func Copy(dst io.Writer, src io.Reader) (int, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, fmt.Errorf("%w: read source: %v", ErrCopy, err)
	}
	n, err := dst.Write(data)
	if err != nil {
		return n, fmt.Errorf("%w: write destination: %v", ErrCopy, err)
	}
	return n, nil
}
