/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package planner

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/josephgoksu/fitcoach/models"
	"github.com/josephgoksu/fitcoach/types"
)

// MalformedPlanError names the first structural problem found in a decoded plan.
type MalformedPlanError struct {
	Path   string
	Reason string
}

func (e *MalformedPlanError) Error() string {
	return fmt.Sprintf("malformed plan: %s %s", e.Reason, e.Path)
}

func missing(path string) error {
	return malformed(path, "missing")
}

func malformed(path, reason string) error {
	return types.NewPipelineError(types.KindValidation, "AI response did not match the plan format",
		&MalformedPlanError{Path: path, Reason: reason})
}

// Normalize converts the generic structure produced by the extractor into a
// FitnessPlan. Required fields are checked in a fixed order and the first
// problem is reported with its path. Nothing is defaulted; optional fields are
// copied only when present.
func Normalize(decoded any) (*models.FitnessPlan, error) {
	root, ok := decoded.(map[string]any)
	if !ok {
		return nil, malformed("(root)", "expected object at")
	}

	rawDays, ok := root["workoutPlan"].([]any)
	if !ok {
		return nil, missing("workoutPlan")
	}
	diet, ok := root["dietPlan"].(map[string]any)
	if !ok {
		return nil, missing("dietPlan")
	}
	rawMeals, ok := diet["meals"].([]any)
	if !ok {
		return nil, missing("dietPlan.meals")
	}
	rawTips, ok := root["tips"].([]any)
	if !ok {
		return nil, missing("tips")
	}
	motivation, ok := root["motivation"].(string)
	if !ok {
		return nil, missing("motivation")
	}

	if len(rawDays) == 0 {
		return nil, malformed("workoutPlan", "empty")
	}
	if len(rawMeals) == 0 {
		return nil, malformed("dietPlan.meals", "empty")
	}
	if len(rawTips) == 0 {
		return nil, malformed("tips", "empty")
	}

	plan := &models.FitnessPlan{
		WorkoutPlan: make([]models.WorkoutDay, 0, len(rawDays)),
		DietPlan:    models.DietPlan{Meals: make([]models.MealPlan, 0, len(rawMeals))},
		Tips:        make([]string, 0, len(rawTips)),
		Motivation:  motivation,
	}

	for i, rd := range rawDays {
		day, err := normalizeDay(rd, fmt.Sprintf("workoutPlan[%d]", i))
		if err != nil {
			return nil, err
		}
		plan.WorkoutPlan = append(plan.WorkoutPlan, day)
	}

	for i, rm := range rawMeals {
		meal, err := normalizeMeal(rm, fmt.Sprintf("dietPlan.meals[%d]", i))
		if err != nil {
			return nil, err
		}
		plan.DietPlan.Meals = append(plan.DietPlan.Meals, meal)
	}

	for i, rt := range rawTips {
		tip, ok := rt.(string)
		if !ok {
			return nil, malformed(fmt.Sprintf("tips[%d]", i), "expected string at")
		}
		plan.Tips = append(plan.Tips, tip)
	}

	return plan, nil
}

func normalizeDay(v any, path string) (models.WorkoutDay, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return models.WorkoutDay{}, malformed(path, "expected object at")
	}
	label, ok := obj["day"].(string)
	if !ok {
		return models.WorkoutDay{}, missing(path + ".day")
	}
	rawExercises, ok := obj["exercises"].([]any)
	if !ok {
		return models.WorkoutDay{}, missing(path + ".exercises")
	}

	day := models.WorkoutDay{Day: label, Exercises: make([]models.Exercise, 0, len(rawExercises))}
	for j, re := range rawExercises {
		ex, err := normalizeExercise(re, fmt.Sprintf("%s.exercises[%d]", path, j))
		if err != nil {
			return models.WorkoutDay{}, err
		}
		day.Exercises = append(day.Exercises, ex)
	}
	return day, nil
}

func normalizeExercise(v any, path string) (models.Exercise, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return models.Exercise{}, malformed(path, "expected object at")
	}

	name, ok := obj["name"].(string)
	if !ok {
		return models.Exercise{}, missing(path + ".name")
	}
	rawSets, present := obj["sets"]
	if !present || rawSets == nil {
		return models.Exercise{}, missing(path + ".sets")
	}
	sets, err := coerceInt(rawSets)
	if err != nil {
		return models.Exercise{}, malformed(path+".sets", "non-integer value at")
	}
	reps, ok := stringish(obj["reps"])
	if !ok {
		return models.Exercise{}, missing(path + ".reps")
	}
	rest, ok := stringish(obj["restTime"])
	if !ok {
		return models.Exercise{}, missing(path + ".restTime")
	}

	ex := models.Exercise{Name: name, Sets: sets, Reps: reps, RestTime: rest}
	if desc, ok := obj["description"].(string); ok {
		ex.Description = desc
	}
	return ex, nil
}

func normalizeMeal(v any, path string) (models.MealPlan, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return models.MealPlan{}, malformed(path, "expected object at")
	}
	mealType, ok := obj["mealType"].(string)
	if !ok {
		return models.MealPlan{}, missing(path + ".mealType")
	}
	rawItems, ok := obj["items"].([]any)
	if !ok {
		return models.MealPlan{}, missing(path + ".items")
	}

	meal := models.MealPlan{MealType: mealType, Items: make([]string, 0, len(rawItems))}
	for k, ri := range rawItems {
		item, ok := ri.(string)
		if !ok {
			return models.MealPlan{}, malformed(fmt.Sprintf("%s.items[%d]", path, k), "expected string at")
		}
		meal.Items = append(meal.Items, item)
	}
	if cal, ok := stringish(obj["calories"]); ok {
		meal.Calories = cal
	}
	return meal, nil
}

// coerceInt accepts JSON numbers with no fractional part and numeric strings.
func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	case int:
		return n, nil
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func floatToInt(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, fmt.Errorf("out of range: %v", f)
	}
	return int(f), nil
}

// stringish returns strings as-is and renders JSON numbers as their literal text.
func stringish(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}
