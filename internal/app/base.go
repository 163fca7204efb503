/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package app provides the application layer that orchestrates business logic.
// CLI commands, the HTTP API and MCP tools are thin adapters over it.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/afero"

	"github.com/josephgoksu/fitcoach/internal/config"
	"github.com/josephgoksu/fitcoach/internal/imagegen"
	"github.com/josephgoksu/fitcoach/internal/llm"
	"github.com/josephgoksu/fitcoach/internal/memory"
	"github.com/josephgoksu/fitcoach/internal/narration"
	"github.com/josephgoksu/fitcoach/internal/planner"
	"github.com/josephgoksu/fitcoach/internal/policy"
	"github.com/josephgoksu/fitcoach/internal/quotes"
	"github.com/josephgoksu/fitcoach/internal/telemetry"
	"github.com/josephgoksu/fitcoach/prompts"
	"github.com/josephgoksu/fitcoach/types"
)

// Context holds shared dependencies for all app services.
type Context struct {
	Cfg       types.AppConfig
	Repo      *memory.Repository
	Telemetry telemetry.Client
	Fs        afero.Fs
	Version   string

	mu     sync.RWMutex
	llmCfg llm.Config
}

// NewContext opens the configured store. LLM config loading is best-effort:
// a bad provider leaves the model config empty and generation reports the problem.
func NewContext(ctx context.Context, cfg types.AppConfig, version string) (*Context, error) {
	store, err := memory.Open(ctx, cfg.Storage, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	llmCfg, err := config.LoadLLMConfig()
	if err != nil {
		llmCfg = llm.Config{}
	}
	return &Context{
		Cfg:       cfg,
		llmCfg:    llmCfg,
		Repo:      memory.NewRepository(store),
		Telemetry: telemetry.New(cfg.Telemetry, version),
		Fs:        afero.NewOsFs(),
		Version:   version,
	}, nil
}

// NewContextWithStore builds a Context around an existing store (tests, embedding).
func NewContextWithStore(store memory.Store, llmCfg llm.Config) *Context {
	return &Context{
		llmCfg:    llmCfg,
		Repo:      memory.NewRepository(store),
		Telemetry: telemetry.NewNoopClient(),
		Fs:        afero.NewMemMapFs(),
	}
}

// LLMConfig returns the current model configuration.
func (c *Context) LLMConfig() llm.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.llmCfg
}

// SetLLMConfig replaces the model configuration; later generations use it.
func (c *Context) SetLLMConfig(cfg llm.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.llmCfg = cfg
}

// Close releases the store and flushes telemetry.
func (c *Context) Close() error {
	if c.Telemetry != nil {
		_ = c.Telemetry.Close()
	}
	return c.Repo.Close()
}

// PromptBuilder returns a builder honouring prompt overrides in the templates directory.
func (c *Context) PromptBuilder() *prompts.PlanBuilder {
	dir := c.Cfg.Plan.TemplatesDir
	if dir == "" && c.Cfg.DataDir != "" {
		dir = config.GetTemplatesDir(c.Cfg.DataDir)
	}
	return prompts.NewPlanBuilder(prompts.NewLoader(c.Fs, dir))
}

// NewPlanGenerator wires the model caller, prompt builder and policy reviewer.
func (c *Context) NewPlanGenerator(ctx context.Context) (*planner.Generator, error) {
	caller, err := llm.NewCallerFromConfig(ctx, c.LLMConfig())
	if err != nil {
		return nil, err
	}

	policiesDir := c.Cfg.Plan.PoliciesDir
	if policiesDir == "" && c.Cfg.DataDir != "" {
		policiesDir = config.GetPoliciesDir(c.Cfg.DataDir)
	}
	engine, err := policy.NewEngine(policy.EngineConfig{
		PoliciesDir: policiesDir,
		Strict:      c.Cfg.Plan.StrictPolicies,
		Fs:          c.Fs,
	})
	if err != nil {
		return nil, types.NewPipelineError(types.KindConfiguration, "failed to load plan policies", err)
	}

	return planner.NewGenerator(planner.GeneratorConfig{
		Caller:   caller,
		Prompts:  c.PromptBuilder(),
		Reviewer: engine,
	}), nil
}

// NewQuoteService returns the daily quote service backed by the repository cache.
func (c *Context) NewQuoteService() *quotes.Service {
	return quotes.NewServiceFromConfig(c.Cfg.Quotes, c.Repo)
}

// NewNarrationClient returns the text-to-speech client.
func (c *Context) NewNarrationClient() *narration.Client {
	cfg := c.Cfg.Narration
	if cfg.APIKey == "" {
		cfg.APIKey = config.ResolveNarrationKey()
	}
	return narration.NewClient(cfg)
}

// NewImageGenerator returns the image generator; without Gemini credentials it renders placeholders.
func (c *Context) NewImageGenerator(ctx context.Context) *imagegen.Generator {
	return imagegen.NewGeneratorFromLLM(ctx, c.LLMConfig(), c.Cfg.Image.Model, c.Cfg.Image.FontPath, c.PromptBuilder())
}
