/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Gender is the self-reported gender on the profile form.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// FitnessGoal is the primary outcome the user is training for.
type FitnessGoal string

const (
	GoalWeightLoss  FitnessGoal = "weight-loss"
	GoalMuscleGain  FitnessGoal = "muscle-gain"
	GoalMaintenance FitnessGoal = "maintenance"
	GoalEndurance   FitnessGoal = "endurance"
)

// FitnessLevel is the user's current training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// WorkoutLocation is where the workouts will be performed.
type WorkoutLocation string

const (
	LocationHome    WorkoutLocation = "home"
	LocationGym     WorkoutLocation = "gym"
	LocationOutdoor WorkoutLocation = "outdoor"
)

// DietaryPreference constrains the generated meals.
type DietaryPreference string

const (
	DietVegetarian    DietaryPreference = "vegetarian"
	DietNonVegetarian DietaryPreference = "non-vegetarian"
	DietVegan         DietaryPreference = "vegan"
	DietKeto          DietaryPreference = "keto"
)

// StressLevel is the optional self-reported stress level.
type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// UserProfile is the input of plan generation. It is created once per form
// submission and never mutated afterwards.
type UserProfile struct {
	Name              string            `json:"name" yaml:"name" validate:"required,max=100"`
	Age               int               `json:"age" yaml:"age" validate:"min=10,max=100"`
	Gender            Gender            `json:"gender" yaml:"gender" validate:"required,oneof=male female other"`
	Height            int               `json:"height" yaml:"height" validate:"min=100,max=250"`
	Weight            int               `json:"weight" yaml:"weight" validate:"min=30,max=200"`
	FitnessGoal       FitnessGoal       `json:"fitnessGoal" yaml:"fitnessGoal" validate:"required,oneof=weight-loss muscle-gain maintenance endurance"`
	FitnessLevel      FitnessLevel      `json:"fitnessLevel" yaml:"fitnessLevel" validate:"required,oneof=beginner intermediate advanced"`
	WorkoutLocation   WorkoutLocation   `json:"workoutLocation" yaml:"workoutLocation" validate:"required,oneof=home gym outdoor"`
	DietaryPreference DietaryPreference `json:"dietaryPreference" yaml:"dietaryPreference" validate:"required,oneof=vegetarian non-vegetarian vegan keto"`
	MedicalHistory    string            `json:"medicalHistory,omitempty" yaml:"medicalHistory,omitempty" validate:"omitempty,max=2000"`
	StressLevel       StressLevel       `json:"stressLevel,omitempty" yaml:"stressLevel,omitempty" validate:"omitempty,oneof=low medium high"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks the profile against the form constraints.
func (p UserProfile) Validate() error {
	return ValidateStruct(p)
}

// ValidateStruct performs validation on any struct that has validation tags
// and flattens the failures into one readable error.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.Field(), ruleDescription(e), e.Value()))
	}
	return fmt.Errorf("invalid profile: %s", strings.Join(errorMessages, "; "))
}

func ruleDescription(e validator.FieldError) string {
	if e.Param() == "" {
		return e.Tag()
	}
	return e.Tag() + "=" + e.Param()
}

// HasMedicalHistory reports whether the optional medical history was provided.
func (p UserProfile) HasMedicalHistory() bool {
	return strings.TrimSpace(p.MedicalHistory) != ""
}

// HasStressLevel reports whether the optional stress level was provided.
func (p UserProfile) HasStressLevel() bool {
	return p.StressLevel != ""
}

// Option lists used by forms and flag help.
var (
	Genders            = []Gender{GenderMale, GenderFemale, GenderOther}
	FitnessGoals       = []FitnessGoal{GoalWeightLoss, GoalMuscleGain, GoalMaintenance, GoalEndurance}
	FitnessLevels      = []FitnessLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}
	WorkoutLocations   = []WorkoutLocation{LocationHome, LocationGym, LocationOutdoor}
	DietaryPreferences = []DietaryPreference{DietVegetarian, DietNonVegetarian, DietVegan, DietKeto}
	StressLevels       = []StressLevel{StressLow, StressMedium, StressHigh}
)
