package ai

import (
	"projectgen/internal/llm"

	"github.com/rs/zerolog"
)

// DefaultMaxTokens caps each model reply when no limit is configured.
const DefaultMaxTokens = 2000

// Generator issues the planner and per-file code requests against one model.
type Generator struct {
	client    llm.Client
	maxTokens int
	logger    zerolog.Logger
}

func NewGenerator(client llm.Client, maxTokens int, logger zerolog.Logger) *Generator {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Generator{
		client:    client,
		maxTokens: maxTokens,
		logger:    logger.With().Str("model", client.Name()).Logger(),
	}
}
