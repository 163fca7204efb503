/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package policy reviews generated plans with OPA Rego policies.
// Warn rules produce advisory messages; deny rules reject a plan only in strict mode.
package policy

import (
	"time"

	"github.com/josephgoksu/fitcoach/models"
)

// PolicyDecision represents the outcome of evaluating policies against a plan.
type PolicyDecision struct {
	DecisionID  string    `json:"decisionId"`           // UUID for referencing in logs
	PolicyPath  string    `json:"policyPath"`           // Rego package path (e.g., "fitcoach.plan")
	Result      string    `json:"result"`               // "allow" or "deny"
	Violations  []string  `json:"violations,omitempty"` // Deny messages from OPA
	Warnings    []string  `json:"warnings,omitempty"`   // Warn messages from OPA
	EvaluatedAt time.Time `json:"evaluatedAt"`          // When the evaluation occurred
}

// PolicyResult constants.
const (
	PolicyResultAllow = "allow"
	PolicyResultDeny  = "deny"
)

// IsAllowed returns true if the policy decision was "allow".
func (d *PolicyDecision) IsAllowed() bool {
	return d.Result == PolicyResultAllow
}

// IsDenied returns true if the policy decision was "deny".
func (d *PolicyDecision) IsDenied() bool {
	return d.Result == PolicyResultDeny
}

// PlanInput is what Rego policies receive in the `input` variable.
type PlanInput struct {
	Plan    *models.FitnessPlan `json:"plan"`
	Profile *models.UserProfile `json:"profile,omitempty"`
}
