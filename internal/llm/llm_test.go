package llm

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimPrefill(t *testing.T) {
	assert.Equal(t, `"files":[]}`, trimPrefill(`{"files":[]}`, "{"))
	assert.Equal(t, `"files":[]}`, trimPrefill("\n  {\"files\":[]}", "{"))
	assert.Equal(t, `"files":[]}`, trimPrefill(`"files":[]}`, "{"))
	assert.Equal(t, "anything", trimPrefill("anything", ""))
}

func TestNewProviders(t *testing.T) {
	ctx := context.Background()

	c, err := New(ctx, Options{Provider: "anthropic", APIKey: "k", Model: "claude-3-haiku-20240307"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic:claude-3-haiku-20240307", c.Name())

	c, err = New(ctx, Options{APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &AnthropicClient{}, c)

	c, err = New(ctx, Options{Provider: "OpenAI", APIKey: "k", BaseURL: "http://localhost:1234/v1"})
	require.NoError(t, err)
	assert.Equal(t, "openai:gpt-4o", c.Name())

	_, err = New(ctx, Options{Provider: "bogus"})
	assert.ErrorContains(t, err, "bogus")
}

type namedMiddleware struct {
	next  Client
	name  string
	trace *[]string
}

func (n *namedMiddleware) Name() string { return n.next.Name() }
func (n *namedMiddleware) Complete(ctx context.Context, req Request) (string, error) {
	*n.trace = append(*n.trace, n.name)
	return n.next.Complete(ctx, req)
}

func TestWrapOrder(t *testing.T) {
	var trace []string
	mw := func(name string) Middleware {
		return func(next Client) Client { return &namedMiddleware{next: next, name: name, trace: &trace} }
	}

	c := Wrap(NewFakeClient("ok"), mw("A"), mw("B"))
	resp, err := c.Complete(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, []string{"A", "B"}, trace)
	assert.Equal(t, "fake", c.Name())
}

type blockingClient struct{}

func (blockingClient) Name() string { return "blocking" }
func (blockingClient) Complete(ctx context.Context, _ Request) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestWithTimeout(t *testing.T) {
	c := Wrap(blockingClient{}, WithTimeout(10*time.Millisecond))
	_, err := c.Complete(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	inner := NewFakeClient()
	assert.Same(t, inner, WithTimeout(0)(inner))
}

func TestWithLoggingPassesThrough(t *testing.T) {
	fake := NewFakeClient("reply")
	c := Wrap(fake, WithLogging(zerolog.Nop()))

	resp, err := c.Complete(context.Background(), Request{Prompt: "p", Prefill: "{"})
	require.NoError(t, err)
	assert.Equal(t, "reply", resp)
	require.Len(t, fake.Requests, 1)
	assert.Equal(t, "{", fake.Requests[0].Prefill)
}

func TestFakeClientScript(t *testing.T) {
	fake := NewFakeClient("one", "two")
	fake.Fallback = "rest"
	ctx := context.Background()

	for _, want := range []string{"one", "two", "rest", "rest"} {
		got, err := fake.Complete(ctx, Request{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err := fake.Complete(cancelled, Request{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGeminiBuildConfig(t *testing.T) {
	cfg := buildConfig(Request{System: "be brief", MaxTokens: 2000})
	assert.Equal(t, int32(2000), cfg.MaxOutputTokens)
	require.NotNil(t, cfg.SystemInstruction)
	require.Len(t, cfg.SystemInstruction.Parts, 1)
	assert.Equal(t, "be brief", cfg.SystemInstruction.Parts[0].Text)

	cfg = buildConfig(Request{})
	assert.Zero(t, cfg.MaxOutputTokens)
	assert.Nil(t, cfg.SystemInstruction)
}
