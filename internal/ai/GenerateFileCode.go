package ai

import (
	"context"
	"fmt"

	"projectgen/internal/ai/prompts"
	aiutils "projectgen/internal/ai/utils"
	"projectgen/internal/llm"
)

// GenerateFileCode asks the model for one file's source and returns the text
// found between the <code> markers.
func (g *Generator) GenerateFileCode(ctx context.Context, projectDescription, filePath, fileDescription string) (string, error) {
	resp, err := g.client.Complete(ctx, llm.Request{
		System:    prompts.FileCodeSystemPrompt,
		Prompt:    prompts.GetFileCodePrompt(projectDescription, fileDescription, filePath),
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("code generation for %s failed: %w", filePath, err)
	}

	if !aiutils.HasCodeMarkers(resp) {
		g.logger.Warn().Str("file", filePath).Msg("response has no <code>...</code> block, file content will be a raw slice of the reply")
	}
	return aiutils.ExtractCode(resp), nil
}
