/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package planner turns a user profile into a validated fitness plan:
// prompt, model call, JSON extraction, normalization and policy review.
package planner

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/josephgoksu/fitcoach/models"
	"github.com/josephgoksu/fitcoach/types"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names, matching the paths Normalize uses.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Register custom validation for non-empty trimmed strings
	_ = validate.RegisterValidation("nonempty", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s != ""
	})
}

// ValidationError provides structured error information for schema validation failures
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message"`
}

// ValidationResult contains the result of schema validation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Err converts a failed result into a validation PipelineError.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return types.NewPipelineError(types.KindValidation, "AI response did not match the plan format",
		fmt.Errorf("malformed plan: %s", strings.Join(msgs, "; ")))
}

// ValidatePlan checks a normalized plan against the struct rules on models.FitnessPlan.
func ValidatePlan(p *models.FitnessPlan) ValidationResult {
	if p == nil {
		return ValidationResult{Errors: []ValidationError{{Field: "plan", Tag: "required", Message: "plan is required"}}}
	}
	return validateStruct(p)
}

// validateStruct is a helper that validates any struct and returns ValidationResult
func validateStruct(s any) ValidationResult {
	err := validate.Struct(s)
	if err == nil {
		return ValidationResult{Valid: true}
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationResult{Errors: []ValidationError{{Tag: "invalid", Message: err.Error()}}}
	}

	var errors []ValidationError
	for _, fe := range fieldErrs {
		errors = append(errors, ValidationError{
			Field:   fieldPath(fe),
			Tag:     fe.Tag(),
			Value:   fe.Value(),
			Message: formatValidationError(fe),
		})
	}

	return ValidationResult{
		Valid:  false,
		Errors: errors,
	}
}

// fieldPath drops the root type name, e.g. "workoutPlan[0].day".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// formatValidationError creates a human-readable error message
func formatValidationError(err validator.FieldError) string {
	field := fieldPath(err)
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "nonempty":
		return fmt.Sprintf("%s cannot be empty or whitespace", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s items", field, err.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, err.Tag())
	}
}
