/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/josephgoksu/fitcoach/internal/llm"
	"github.com/josephgoksu/fitcoach/internal/policy"
	"github.com/josephgoksu/fitcoach/internal/utils"
	"github.com/josephgoksu/fitcoach/models"
	"github.com/josephgoksu/fitcoach/prompts"
	"github.com/josephgoksu/fitcoach/types"
)

var tracer = otel.Tracer("github.com/josephgoksu/fitcoach/internal/planner")

// Caller returns the raw text of the first model that answers a prompt.
type Caller interface {
	Call(ctx context.Context, prompt string) (*llm.Response, error)
}

// Reviewer runs advisory checks on a normalized plan. Only a strict
// reviewer may reject a plan or fail generation.
type Reviewer interface {
	ReviewPlan(ctx context.Context, plan *models.FitnessPlan, profile *models.UserProfile) (*policy.PolicyDecision, error)
	Strict() bool
}

// reviewUnavailableWarning is attached when a non-strict review could not run.
const reviewUnavailableWarning = "plan review skipped: a policy failed to evaluate"

// GeneratorConfig configures the plan pipeline.
type GeneratorConfig struct {
	Caller   Caller
	Prompts  *prompts.PlanBuilder // nil uses the built-in prompt texts
	Reviewer Reviewer             // optional
}

// Generator runs profile -> prompt -> model call -> extraction -> normalization -> review.
type Generator struct {
	caller   Caller
	prompts  *prompts.PlanBuilder
	reviewer Reviewer
}

// NewGenerator creates a plan Generator.
func NewGenerator(cfg GeneratorConfig) *Generator {
	pb := cfg.Prompts
	if pb == nil {
		pb = prompts.NewPlanBuilder(nil)
	}
	return &Generator{caller: cfg.Caller, prompts: pb, reviewer: cfg.Reviewer}
}

// GenerationResult contains a plan and how it was obtained.
type GenerationResult struct {
	Plan       *models.FitnessPlan
	RawOutput  string
	Model      string
	Attempts   int
	Duration   time.Duration
	Warnings   []string
	DecisionID string
}

// Generate produces a complete plan for profile or fails as a whole.
func (g *Generator) Generate(ctx context.Context, profile models.UserProfile) (_ *GenerationResult, err error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "plan.generate")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(types.KindOf(err)))
		}
		span.End()
	}()

	if err := profile.Validate(); err != nil {
		return nil, types.NewPipelineError(types.KindValidation, "invalid profile", err)
	}
	if g.caller == nil {
		return nil, types.NewPipelineError(types.KindConfiguration, "no LLM client configured", nil)
	}

	prompt, err := g.prompts.Plan(profile)
	if err != nil {
		return nil, types.NewPipelineError(types.KindConfiguration, "failed to build prompt", err)
	}
	slog.Debug("plan prompt built", "chars", len(prompt), "est_tokens", llm.EstimateTokens(prompt))

	resp, err := g.caller.Call(ctx, prompt)
	if err != nil {
		return nil, err
	}

	plan, err := ParsePlanResponse(resp.Text)
	if err != nil {
		slog.Warn("plan response rejected", "model", resp.Model, "kind", string(types.KindOf(err)), "raw_len", len(resp.Text))
		return nil, err
	}

	result := &GenerationResult{
		Plan:      plan,
		RawOutput: resp.Text,
		Model:     resp.Model,
		Attempts:  resp.Attempts,
	}

	if g.reviewer != nil {
		decision, err := g.reviewer.ReviewPlan(ctx, plan, &profile)
		switch {
		case err != nil && g.reviewer.Strict():
			return nil, types.NewPipelineError(types.KindConfiguration, "plan review failed", err)
		case err != nil:
			slog.Warn("plan review failed; keeping plan", "error", err)
			result.Warnings = []string{reviewUnavailableWarning}
		case decision.IsDenied():
			return nil, types.NewPipelineError(types.KindValidation, "plan rejected by policy",
				errors.New(utils.Truncate(fmt.Sprint(decision.Violations), 300)))
		default:
			result.Warnings = decision.Warnings
			result.DecisionID = decision.DecisionID
		}
	}

	result.Duration = time.Since(start)
	span.SetAttributes(
		attribute.String("llm.model", result.Model),
		attribute.Int("plan.days", len(plan.WorkoutPlan)),
		attribute.Int("plan.warnings", len(result.Warnings)),
	)
	slog.Info("plan generated", "model", result.Model, "attempts", result.Attempts,
		"days", len(plan.WorkoutPlan), "meals", len(plan.DietPlan.Meals), "warnings", len(result.Warnings),
		"duration_ms", result.Duration.Milliseconds())
	return result, nil
}

// ParsePlanResponse extracts, normalizes and validates a raw model response.
// Extraction and normalization stay separate stages so each fails with its own kind.
func ParsePlanResponse(raw string) (*models.FitnessPlan, error) {
	decoded, err := utils.ExtractJSONPayload(raw)
	if err != nil {
		return nil, err
	}
	plan, err := Normalize(decoded)
	if err != nil {
		return nil, err
	}
	if err := ValidatePlan(plan).Err(); err != nil {
		return nil, err
	}
	return plan, nil
}
