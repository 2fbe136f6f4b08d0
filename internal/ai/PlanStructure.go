package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"projectgen/internal/ai/prompts"
	"projectgen/internal/llm"
	"projectgen/internal/types"
)

// MalformedResponseError reports a planner reply that is not valid JSON
// once the prefill is put back in front of it.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("model returned malformed project structure: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// PlanStructure asks the model for the project's file/directory tree.
func (g *Generator) PlanStructure(ctx context.Context, projectDescription string) (*types.StructureNode, error) {
	g.logger.Info().Msg("Generating project structure based on the project description...")

	reply, err := g.client.Complete(ctx, llm.Request{
		System:    prompts.StructureSystemPrompt,
		Prompt:    prompts.GetProjectStructurePrompt(projectDescription),
		Prefill:   prompts.StructurePrefill,
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("project structure request failed: %w", err)
	}

	generatedStructure := prompts.StructurePrefill + reply
	g.logger.Info().Msgf("Generated project structure:\n%s", generatedStructure)

	return ParseStructure(generatedStructure)
}

// ParseStructure decodes the planner's JSON into a tree rooted at an unnamed directory.
func ParseStructure(raw string) (*types.StructureNode, error) {
	var root types.StructureNode
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}
	return &root, nil
}
