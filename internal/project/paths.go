package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnsafeName = errors.New("unsafe node name")

// joinNode joins a model-provided name under base and rejects names that are
// empty, absolute or climb out of base. Surrounding whitespace is dropped first,
// so " README.md " lands on disk as "README.md".
func joinNode(base, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimSpace(name)))
	if clean == "." || clean == "" || filepath.IsAbs(clean) || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}
	return filepath.Join(base, clean), nil
}
