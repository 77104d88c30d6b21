package backup

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveDir descends from root through nodes and returns the real,
// absolute location of the resulting directory with every symbolic link
// along the way resolved.
func ResolveDir(root string, nodes ...string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(append([]string{root}, nodes...)...))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolvePath, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrResolvePath, abs, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrResolvePath, resolved, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %q is not a directory", ErrResolvePath, resolved)
	}
	return resolved, nil
}
