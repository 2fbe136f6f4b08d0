package ai

import (
	"context"
	"errors"
	"testing"

	"projectgen/internal/ai/prompts"
	"projectgen/internal/llm"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanStructurePrependsPrefill(t *testing.T) {
	// The model continues after the "{" prefill, so its reply lacks the opening brace.
	fake := llm.NewFakeClient(`"files":[{"type":"file","name":"README.md","description":"readme"}],"directories":[{"name":"src","files":[{"name":"a.txt"}]}]}`)
	gen := NewGenerator(fake, 0, zerolog.Nop())

	tree, err := gen.PlanStructure(context.Background(), "a todo app")
	require.NoError(t, err)

	require.Len(t, tree.Files(), 1)
	assert.Equal(t, "README.md", tree.Files()[0].Name)
	require.Len(t, tree.Directories(), 1)
	assert.Equal(t, "src", tree.Directories()[0].Name)

	require.Len(t, fake.Requests, 1)
	req := fake.Requests[0]
	assert.Equal(t, "{", req.Prefill)
	assert.Equal(t, prompts.StructureSystemPrompt, req.System)
	assert.Equal(t, DefaultMaxTokens, req.MaxTokens)
	assert.Contains(t, req.Prompt, "<project_description>\na todo app\n</project_description>")
	assert.Contains(t, req.Prompt, "README.md")
}

func TestPlanStructureMalformed(t *testing.T) {
	fake := llm.NewFakeClient(`here is your structure: {"files": []}`)
	gen := NewGenerator(fake, 100, zerolog.Nop())

	_, err := gen.PlanStructure(context.Background(), "desc")
	require.Error(t, err)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, `{here is your structure: {"files": []}`, malformed.Raw)
	assert.Equal(t, 100, fake.Requests[0].MaxTokens)
}

type failingClient struct{ err error }

func (f failingClient) Name() string { return "failing" }
func (f failingClient) Complete(context.Context, llm.Request) (string, error) {
	return "", f.err
}

func TestPlanStructureClientError(t *testing.T) {
	boom := errors.New("401 unauthorized")
	gen := NewGenerator(failingClient{err: boom}, 0, zerolog.Nop())

	_, err := gen.PlanStructure(context.Background(), "desc")
	require.ErrorIs(t, err, boom)

	var malformed *MalformedResponseError
	assert.False(t, errors.As(err, &malformed))
}

func TestParseStructureCanned(t *testing.T) {
	tree, err := ParseStructure(`{"files":[],"directories":[{"name":"src","files":[{"name":"a.txt"}]}]}`)
	require.NoError(t, err)

	assert.Empty(t, tree.Files())
	require.Len(t, tree.Directories(), 1)
	src := tree.Directories()[0]
	require.Len(t, src.Files(), 1)
	assert.Equal(t, "a.txt", src.Files()[0].Name)
}
