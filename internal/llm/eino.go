/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ChatModelFactory builds a chat model for one model identifier.
type ChatModelFactory func(ctx context.Context, cfg Config, modelID string) (model.BaseChatModel, error)

// EinoGenerator generates text through an Eino chat model.
// A chat model is built per call because each fallback attempt targets a different model.
type EinoGenerator struct {
	cfg     Config
	factory ChatModelFactory
}

// NewEinoGenerator creates a Generator for the OpenAI, Ollama and Anthropic providers.
func NewEinoGenerator(cfg Config) *EinoGenerator {
	return &EinoGenerator{cfg: cfg, factory: NewChatModel}
}

// WithFactory replaces the chat model factory. Used by tests.
func (g *EinoGenerator) WithFactory(f ChatModelFactory) *EinoGenerator {
	g.factory = f
	return g
}

// Generate sends prompt as a single user message.
func (g *EinoGenerator) Generate(ctx context.Context, modelID, prompt string) (string, error) {
	cm, err := g.factory(ctx, g.cfg, modelID)
	if err != nil {
		return "", fmt.Errorf("create chat model %s: %w", modelID, err)
	}

	msg, err := cm.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", err
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "", fmt.Errorf("model %s returned an empty response", modelID)
	}
	return msg.Content, nil
}
