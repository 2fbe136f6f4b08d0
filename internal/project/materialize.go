package project

import (
	"fmt"
	"os"
	"path/filepath"

	"projectgen/internal/types"
)

// Materialize creates every directory reachable from the root's directories
// and an empty placeholder for each file inside them. Files sitting directly
// under the root are left for GenerateContents to create.
func Materialize(root string, tree *types.StructureNode) error {
	if tree == nil {
		return nil
	}
	for _, dir := range tree.Directories() {
		if err := materializeDir(root, dir); err != nil {
			return err
		}
	}
	return nil
}

func materializeDir(base string, dir *types.StructureNode) error {
	dirPath, err := joinNode(base, dir.Name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}

	for _, file := range dir.Files() {
		filePath, err := joinNode(dirPath, file.Name)
		if err != nil {
			return err
		}
		if err := touchEmpty(filePath); err != nil {
			return err
		}
	}

	for _, sub := range dir.Directories() {
		if err := materializeDir(dirPath, sub); err != nil {
			return err
		}
	}
	return nil
}

// touchEmpty creates path, truncating any existing content.
func touchEmpty(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create placeholder %s: %w", path, err)
	}
	return f.Close()
}
