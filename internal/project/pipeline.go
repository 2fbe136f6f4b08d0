package project

import (
	"context"
	"fmt"
	"os"

	"projectgen/internal/types"

	"github.com/rs/zerolog"
)

// Planner produces the project tree from a description.
type Planner interface {
	PlanStructure(ctx context.Context, projectDescription string) (*types.StructureNode, error)
}

// Pipeline runs description -> structure -> skeleton -> populated files.
type Pipeline struct {
	planner         Planner
	writer          CodeWriter
	descriptionFile string
	outputDir       string
	logger          zerolog.Logger
}

func NewPipeline(planner Planner, writer CodeWriter, descriptionFile, outputDir string, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		planner:         planner,
		writer:          writer,
		descriptionFile: descriptionFile,
		outputDir:       outputDir,
		logger:          logger,
	}
}

func (p *Pipeline) Run(ctx context.Context) error {
	raw, err := os.ReadFile(p.descriptionFile)
	if err != nil {
		return fmt.Errorf("failed to read project description: %w", err)
	}
	projectDescription := string(raw)

	tree, err := p.planner.PlanStructure(ctx, projectDescription)
	if err != nil {
		return err
	}

	if err := ResetOutputDir(p.outputDir); err != nil {
		return err
	}
	p.logger.Info().Str("output", p.outputDir).Msg("Output directory reset")

	if err := Materialize(p.outputDir, tree); err != nil {
		return err
	}

	gen := NewContentGenerator(p.writer, projectDescription, p.logger)
	if err := gen.GenerateContents(ctx, p.outputDir, tree); err != nil {
		return err
	}

	p.logger.Info().Interface("files_by_type", gen.FilesByType()).Msg("Code generation complete.")
	return nil
}

// ResetOutputDir deletes dir recursively and recreates it empty.
func ResetOutputDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove output directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
