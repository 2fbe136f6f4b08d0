package project

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"testing"

	"projectgen/internal/ai"
	"projectgen/internal/types"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *types.StructureNode {
	t.Helper()
	tree, err := ai.ParseStructure(raw)
	require.NoError(t, err)
	return tree
}

// listTree returns every entry under root as slash paths, directories with a trailing slash.
func listTree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, _ := filepath.Rel(root, path)
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			rel += "/"
		}
		out = append(out, rel)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(out)
	return out
}

// recordingWriter answers every file with a fixed body and remembers the call order.
type recordingWriter struct {
	calls []string
	descs []string
	fail  map[string]error
}

func (w *recordingWriter) GenerateFileCode(_ context.Context, projectDescription, filePath, fileDescription string) (string, error) {
	w.calls = append(w.calls, filePath)
	w.descs = append(w.descs, projectDescription+"|"+fileDescription)
	if err := w.fail[filePath]; err != nil {
		return "", err
	}
	return "// " + filePath, nil
}

type stubPlanner struct {
	raw   string
	calls int
	got   string
}

func (p *stubPlanner) PlanStructure(_ context.Context, projectDescription string) (*types.StructureNode, error) {
	p.calls++
	p.got = projectDescription
	return ai.ParseStructure(p.raw)
}

func generatedFile(path, content string) types.GeneratedFile {
	return types.GeneratedFile{Path: path, Content: content}
}
