/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package models

// FitnessPlan is the normalized output of the generation pipeline.
// A plan is either complete or not produced at all.
type FitnessPlan struct {
	WorkoutPlan []WorkoutDay `json:"workoutPlan" yaml:"workoutPlan" validate:"required,min=1,dive"`
	DietPlan    DietPlan     `json:"dietPlan" yaml:"dietPlan"`
	Tips        []string     `json:"tips" yaml:"tips" validate:"required,min=1"`
	Motivation  string       `json:"motivation" yaml:"motivation"`
}

// WorkoutDay is one entry of the weekly schedule.
type WorkoutDay struct {
	Day       string     `json:"day" yaml:"day" validate:"nonempty"`
	Exercises []Exercise `json:"exercises" yaml:"exercises" validate:"dive"`
}

// Exercise is a single prescribed movement.
type Exercise struct {
	Name        string `json:"name" yaml:"name" validate:"nonempty"`
	Sets        int    `json:"sets" yaml:"sets"`
	Reps        string `json:"reps" yaml:"reps"`         // e.g. "10-12"
	RestTime    string `json:"restTime" yaml:"restTime"` // e.g. "60 seconds"
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DietPlan groups the daily meals.
type DietPlan struct {
	Meals []MealPlan `json:"meals" yaml:"meals" validate:"required,min=1,dive"`
}

// MealPlan is one meal category with its items.
type MealPlan struct {
	MealType string   `json:"mealType" yaml:"mealType" validate:"nonempty"`
	Items    []string `json:"items" yaml:"items"`
	Calories string   `json:"calories,omitempty" yaml:"calories,omitempty"` // e.g. "400-500 kcal"
}

// ExerciseCount returns the number of exercises across all days.
func (p *FitnessPlan) ExerciseCount() int {
	n := 0
	for _, d := range p.WorkoutPlan {
		n += len(d.Exercises)
	}
	return n
}
