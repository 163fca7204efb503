/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/josephgoksu/fitcoach/internal/memory"
	"github.com/josephgoksu/fitcoach/internal/planner"
	"github.com/josephgoksu/fitcoach/internal/telemetry"
	"github.com/josephgoksu/fitcoach/models"
	"github.com/josephgoksu/fitcoach/types"
)

// PlanGenerator produces a plan for a profile.
type PlanGenerator interface {
	Generate(ctx context.Context, profile models.UserProfile) (*planner.GenerationResult, error)
}

// GenerateResult contains the result of plan generation.
type GenerateResult struct {
	Success  bool                `json:"success"`
	Plan     *models.FitnessPlan `json:"plan,omitempty"`
	Profile  *models.UserProfile `json:"profile,omitempty"`
	Model    string              `json:"model,omitempty"`
	Attempts int                 `json:"attempts,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
	Kind     types.ErrorKind     `json:"kind,omitempty"`
	Message  string              `json:"message,omitempty"`
	Hint     string              `json:"hint,omitempty"`
}

// SavedPlan is the persisted plan together with the profile it was made for.
type SavedPlan struct {
	Plan    *models.FitnessPlan `json:"plan" yaml:"plan"`
	Profile *models.UserProfile `json:"profile" yaml:"profile"`
}

// ErrNoSavedPlan is returned when no complete plan/profile pair is stored.
var ErrNoSavedPlan = errors.New("no saved plan (run `fitcoach generate` first)")

// PlanApp generates, stores and clears plans.
type PlanApp struct {
	ctx *Context

	// GeneratorFactory builds the pipeline on first use.
	GeneratorFactory func(ctx context.Context) (PlanGenerator, error)
}

// NewPlanApp creates a PlanApp wired to the configured pipeline.
func NewPlanApp(appCtx *Context) *PlanApp {
	return &PlanApp{
		ctx: appCtx,
		GeneratorFactory: func(ctx context.Context) (PlanGenerator, error) {
			return appCtx.NewPlanGenerator(ctx)
		},
	}
}

// Generate runs the pipeline and, on success, overwrites the saved plan and profile.
// Failures are reported in the result, never as a Go error.
func (a *PlanApp) Generate(ctx context.Context, profile models.UserProfile) *GenerateResult {
	if err := profile.Validate(); err != nil {
		return a.fail(types.NewPipelineError(types.KindValidation, "invalid profile", err))
	}

	gen, err := a.GeneratorFactory(ctx)
	if err != nil {
		return a.fail(err)
	}
	res, err := gen.Generate(ctx, profile)
	if err != nil {
		return a.fail(err)
	}

	if err := a.ctx.Repo.SavePlan(ctx, res.Plan); err != nil {
		slog.Warn("failed to save plan", "error", err)
	}
	if err := a.ctx.Repo.SaveProfile(ctx, profile); err != nil {
		slog.Warn("failed to save profile", "error", err)
	}

	a.ctx.Telemetry.Track(telemetry.EventPlanGenerated, map[string]any{
		"model":    res.Model,
		"attempts": res.Attempts,
		"warnings": len(res.Warnings),
		"goal":     string(profile.FitnessGoal),
		"level":    string(profile.FitnessLevel),
	})

	return &GenerateResult{
		Success:  true,
		Plan:     res.Plan,
		Profile:  &profile,
		Model:    res.Model,
		Attempts: res.Attempts,
		Warnings: res.Warnings,
	}
}

// Regenerate runs the pipeline again for the saved profile.
func (a *PlanApp) Regenerate(ctx context.Context) *GenerateResult {
	profile, err := a.ctx.Repo.LoadProfile(ctx)
	if errors.Is(err, memory.ErrNotFound) {
		return &GenerateResult{Success: false, Message: "no saved profile to regenerate from", Hint: "Run `fitcoach generate` with a profile first."}
	}
	if err != nil {
		return &GenerateResult{Success: false, Message: fmt.Sprintf("failed to load saved profile: %v", err)}
	}
	return a.Generate(ctx, *profile)
}

// Current returns the saved plan and profile. Both must be present.
func (a *PlanApp) Current(ctx context.Context) (*SavedPlan, error) {
	plan, err := a.ctx.Repo.LoadPlan(ctx)
	if errors.Is(err, memory.ErrNotFound) {
		return nil, ErrNoSavedPlan
	}
	if err != nil {
		return nil, err
	}
	profile, err := a.ctx.Repo.LoadProfile(ctx)
	if errors.Is(err, memory.ErrNotFound) {
		return nil, ErrNoSavedPlan
	}
	if err != nil {
		return nil, err
	}
	return &SavedPlan{Plan: plan, Profile: profile}, nil
}

// Clear removes the saved plan and profile.
func (a *PlanApp) Clear(ctx context.Context) error {
	return a.ctx.Repo.Clear(ctx)
}

func (a *PlanApp) fail(err error) *GenerateResult {
	f := DescribeError(err)
	slog.Warn("plan generation failed", "kind", string(f.Kind), "error", err)
	a.ctx.Telemetry.Track(telemetry.EventPlanFailed, map[string]any{"kind": string(f.Kind)})
	return &GenerateResult{Success: false, Kind: f.Kind, Message: f.Message, Hint: f.Hint}
}
