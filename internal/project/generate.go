package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"projectgen/internal/types"
	"projectgen/internal/utils"

	"github.com/rs/zerolog"
)

// CodeWriter produces the contents of one file.
type CodeWriter interface {
	GenerateFileCode(ctx context.Context, projectDescription, filePath, fileDescription string) (string, error)
}

// ContentGenerator fills every file of a planned tree, one model call per file.
type ContentGenerator struct {
	writer      CodeWriter
	description string
	logger      zerolog.Logger
	byType      map[string]int
}

func NewContentGenerator(writer CodeWriter, projectDescription string, logger zerolog.Logger) *ContentGenerator {
	return &ContentGenerator{writer: writer, description: projectDescription, logger: logger, byType: map[string]int{}}
}

// FilesByType counts the files written so far per file type.
func (g *ContentGenerator) FilesByType() map[string]int {
	out := make(map[string]int, len(g.byType))
	for t, n := range g.byType {
		out[t] = n
	}
	return out
}

// GenerateContents walks node under base. At every level all child
// directories are handled before that level's files. The first error stops
// the walk; files already written stay on disk.
func (g *ContentGenerator) GenerateContents(ctx context.Context, base string, node *types.StructureNode) error {
	if node == nil {
		return nil
	}
	for _, dir := range node.Directories() {
		dirPath, err := joinNode(base, dir.Name)
		if err != nil {
			return err
		}
		if err := g.GenerateContents(ctx, dirPath, dir); err != nil {
			return err
		}
	}

	for _, file := range node.Files() {
		filePath, err := joinNode(base, file.Name)
		if err != nil {
			return err
		}
		generated, err := g.generateFile(ctx, filePath, file.Description)
		if err != nil {
			return err
		}
		if err := WriteGeneratedFile(generated); err != nil {
			return err
		}
		g.byType[generated.Type]++
		g.logger.Info().Str("file", filePath).Int("bytes", len(generated.Content)).Msgf("Generated code for file: %s", filePath)
		g.logger.Debug().Msg(generated.Content)
	}
	return nil
}

func (g *ContentGenerator) generateFile(ctx context.Context, filePath, fileDescription string) (types.GeneratedFile, error) {
	fileType := utils.DetermineFileType(filePath)
	g.logger.Info().Str("type", fileType).Msg("Generating code for - " + filePath)

	code, err := g.writer.GenerateFileCode(ctx, g.description, filepath.ToSlash(filePath), fileDescription)
	if err != nil {
		return types.GeneratedFile{}, err
	}
	return types.GeneratedFile{Path: filePath, Type: fileType, Content: code}, nil
}

// WriteGeneratedFile replaces the file at file.Path with its content,
// creating parent directories as needed.
func WriteGeneratedFile(file types.GeneratedFile) error {
	path := file.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(file.Content), 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
