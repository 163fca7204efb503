/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package policy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/open-policy-agent/opa/v1/rego"
	"github.com/spf13/afero"

	"github.com/josephgoksu/fitcoach/models"
)

// DefaultPolicyPackage is the Rego package queried for plan review rules.
const DefaultPolicyPackage = "fitcoach.plan"

// Engine wraps OPA for plan review.
// All evaluation happens locally without external network calls.
type Engine struct {
	policies      []*PolicyFile
	policyPackage string
	strict        bool
}

// EngineConfig holds configuration for creating an Engine.
type EngineConfig struct {
	// PoliciesDir holds operator .rego files. Empty means built-in policy only.
	PoliciesDir string

	// PolicyPackage is the Rego package to query.
	// If empty, defaults to "fitcoach.plan"
	PolicyPackage string

	// Strict makes deny rules reject the plan. Otherwise they are reported as warnings.
	Strict bool

	// DisableDefault skips the built-in policy.
	DisableDefault bool

	// Fs is the filesystem to use for loading policies.
	// If nil, uses the OS filesystem.
	Fs afero.Fs
}

// NewEngine creates a policy engine with the built-in policy plus any files in PoliciesDir.
// Every policy is compiled once so syntax errors surface at startup.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.PolicyPackage == "" {
		cfg.PolicyPackage = DefaultPolicyPackage
	}

	var policies []*PolicyFile
	if !cfg.DisableDefault {
		policies = append(policies, DefaultPolicy())
	}
	loaded, err := NewLoader(cfg.Fs, cfg.PoliciesDir).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load policies: %w", err)
	}
	policies = append(policies, loaded...)

	for _, p := range policies {
		if err := ValidatePolicy(p.Content); err != nil {
			return nil, fmt.Errorf("policy %s: %w", p.Path, err)
		}
	}

	return &Engine{
		policies:      policies,
		policyPackage: cfg.PolicyPackage,
		strict:        cfg.Strict,
	}, nil
}

// NewEngineWithPolicies creates an engine with explicitly provided policies.
func NewEngineWithPolicies(strict bool, policies ...*PolicyFile) *Engine {
	return &Engine{
		policies:      policies,
		policyPackage: DefaultPolicyPackage,
		strict:        strict,
	}
}

// Strict reports whether deny rules reject plans.
func (e *Engine) Strict() bool {
	return e.strict
}

// PolicyNames returns the names of all loaded policies.
func (e *Engine) PolicyNames() []string {
	names := make([]string, len(e.policies))
	for i, p := range e.policies {
		names[i] = p.Name
	}
	return names
}

// Evaluate runs all loaded policies against input and collects the "deny"
// and "warn" sets of the policy package. Outside strict mode deny messages
// are downgraded to warnings and the decision is always allow.
func (e *Engine) Evaluate(ctx context.Context, input any) (*PolicyDecision, error) {
	decision := &PolicyDecision{
		DecisionID:  uuid.New().String(),
		PolicyPath:  e.policyPackage,
		Result:      PolicyResultAllow,
		EvaluatedAt: time.Now().UTC(),
	}
	if len(e.policies) == 0 {
		return decision, nil
	}

	modules := make([]func(*rego.Rego), len(e.policies))
	for i, p := range e.policies {
		modules[i] = rego.Module(p.Path, p.Content)
	}

	violations, err := e.querySet(ctx, input, "deny", modules)
	if err != nil {
		return nil, fmt.Errorf("query deny rules: %w", err)
	}
	warnings, err := e.querySet(ctx, input, "warn", modules)
	if err != nil {
		return nil, fmt.Errorf("query warn rules: %w", err)
	}

	decision.Warnings = warnings
	if len(violations) > 0 {
		if e.strict {
			decision.Result = PolicyResultDeny
			decision.Violations = violations
		} else {
			decision.Warnings = append(decision.Warnings, violations...)
		}
	}
	return decision, nil
}

// ReviewPlan evaluates a plan (and optionally the profile it was built for).
func (e *Engine) ReviewPlan(ctx context.Context, plan *models.FitnessPlan, profile *models.UserProfile) (*PolicyDecision, error) {
	decision, err := e.Evaluate(ctx, &PlanInput{Plan: plan, Profile: profile})
	if err != nil {
		return nil, err
	}
	if len(decision.Warnings) > 0 {
		slog.Debug("plan review warnings", "decision_id", decision.DecisionID, "count", len(decision.Warnings))
	}
	return decision, nil
}

// querySet queries a set-generating rule (like deny or warn) and returns all string values.
// An undefined rule yields an empty result set, not an error.
func (e *Engine) querySet(ctx context.Context, input any, ruleName string, modules []func(*rego.Rego)) ([]string, error) {
	opts := []func(*rego.Rego){
		rego.Query(fmt.Sprintf("data.%s.%s", e.policyPackage, ruleName)),
		rego.Input(input),
	}
	opts = append(opts, modules...)

	rs, err := rego.New(opts...).Eval(ctx)
	if err != nil {
		return nil, err
	}

	var results []string
	for _, result := range rs {
		for _, expr := range result.Expressions {
			set, ok := expr.Value.([]any)
			if !ok {
				continue
			}
			for _, item := range set {
				if s, ok := item.(string); ok {
					results = append(results, s)
				}
			}
		}
	}
	return results, nil
}

// ValidatePolicy checks if a policy has valid Rego syntax.
func ValidatePolicy(content string) error {
	_, err := rego.New(
		rego.Query("data"),
		rego.Module("validation.rego", content),
	).PrepareForEval(context.Background())
	if err != nil {
		return fmt.Errorf("invalid policy: %w", err)
	}
	return nil
}
