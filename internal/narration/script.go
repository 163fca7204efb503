/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package narration

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/fitcoach/models"
)

// Section selects which part of a plan is read aloud.
type Section string

const (
	SectionWorkout    Section = "workout"
	SectionDiet       Section = "diet"
	SectionTips       Section = "tips"
	SectionMotivation Section = "motivation"
)

// Sections lists the accepted section names.
var Sections = []Section{SectionWorkout, SectionDiet, SectionTips, SectionMotivation}

// ParseSection validates a section name.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if strings.EqualFold(s, string(sec)) {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section %q (use workout, diet, tips or motivation)", s)
}

// Script renders the narration text for one section of plan.
func Script(plan *models.FitnessPlan, section Section) (string, error) {
	if plan == nil {
		return "", fmt.Errorf("no plan to narrate")
	}
	var b strings.Builder
	switch section {
	case SectionWorkout:
		b.WriteString("Your Workout Plan: ")
		for _, day := range plan.WorkoutPlan {
			fmt.Fprintf(&b, "%s. ", day.Day)
			for _, ex := range day.Exercises {
				fmt.Fprintf(&b, "%s, %d sets of %s reps, rest %s. ", ex.Name, ex.Sets, ex.Reps, ex.RestTime)
			}
		}
	case SectionDiet:
		b.WriteString("Your Diet Plan: ")
		for _, meal := range plan.DietPlan.Meals {
			fmt.Fprintf(&b, "%s: %s. ", meal.MealType, strings.Join(meal.Items, ", "))
		}
	case SectionTips:
		b.WriteString("Tips and Advice: ")
		for _, tip := range plan.Tips {
			fmt.Fprintf(&b, "%s. ", strings.TrimRight(tip, ". "))
		}
	case SectionMotivation:
		b.WriteString(plan.Motivation)
	default:
		return "", fmt.Errorf("unknown section %q", section)
	}
	return strings.TrimSpace(b.String()), nil
}
