/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephgoksu/fitcoach/internal/utils"
	"github.com/josephgoksu/fitcoach/models"
)

// RenderProfile summarizes the profile a plan was made for.
func RenderProfile(p *models.UserProfile) string {
	if p == nil {
		return ""
	}
	parts := []string{
		fmt.Sprintf("%d y", p.Age),
		fmt.Sprintf("%d cm", p.Height),
		fmt.Sprintf("%d kg", p.Weight),
		utils.HumanizeEnum(string(p.FitnessGoal)),
		utils.HumanizeEnum(string(p.FitnessLevel)),
		utils.HumanizeEnum(string(p.WorkoutLocation)),
		utils.HumanizeEnum(string(p.DietaryPreference)),
	}
	if p.HasStressLevel() {
		parts = append(parts, utils.HumanizeEnum(string(p.StressLevel))+" stress")
	}
	return StyleTitle.Render(p.Name) + StyleSubtle.Render("  "+strings.Join(parts, " · "))
}

// RenderPlan renders the workout schedule, meals, tips and motivation.
// width bounds wrapped prose; 0 uses DefaultWidth.
func RenderPlan(plan *models.FitnessPlan, profile *models.UserProfile, width int) string {
	if plan == nil {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}
	var sb strings.Builder

	if profile != nil {
		sb.WriteString(RenderProfile(profile) + "\n\n")
	}

	sb.WriteString(StyleSectionTitle.Render("Workout Plan") + "\n\n")
	for _, day := range plan.WorkoutPlan {
		sb.WriteString(StyleDay.Render(day.Day) + "\n")
		if len(day.Exercises) == 0 {
			sb.WriteString(StyleSubtle.Render("  Rest day") + "\n\n")
			continue
		}
		t := &Table{Headers: []string{"Exercise", "Sets", "Reps", "Rest"}, MaxWidth: 32}
		for _, ex := range day.Exercises {
			t.Rows = append(t.Rows, []string{ex.Name, strconv.Itoa(ex.Sets), ex.Reps, ex.RestTime})
		}
		sb.WriteString(t.Render())
		for _, ex := range day.Exercises {
			if ex.Description == "" {
				continue
			}
			for _, line := range utils.WrapWords(ex.Name+": "+ex.Description, width-4) {
				sb.WriteString("   " + StyleSubtle.Render(line) + "\n")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(StyleSectionTitle.Render("Diet Plan") + "\n\n")
	for _, meal := range plan.DietPlan.Meals {
		head := StyleTitle.Render(meal.MealType)
		if meal.Calories != "" {
			head += StyleSubtle.Render("  " + meal.Calories)
		}
		sb.WriteString(head + "\n")
		for _, item := range meal.Items {
			sb.WriteString("  • " + item + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(StyleSectionTitle.Render("Tips and Advice") + "\n\n")
	for _, tip := range plan.Tips {
		for i, line := range utils.WrapWords(tip, width-4) {
			prefix := "    "
			if i == 0 {
				prefix = "  " + Icon("✓", StyleSuccess) + " "
			}
			sb.WriteString(prefix + line + "\n")
		}
	}

	if plan.Motivation != "" {
		sb.WriteString("\n" + NewPanel("Motivation", strings.Join(utils.WrapWords(plan.Motivation, width-6), "\n")).
			WithBorderColor(ColorSuccess).Render() + "\n")
	}
	return sb.String()
}

// RenderWarnings lists advisory review findings.
func RenderWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, w := range warnings {
		sb.WriteString(Icon("!", StyleWarning) + " " + StyleWarning.Render(w) + "\n")
	}
	return sb.String()
}

// RenderQuote renders the quote of the day.
func RenderQuote(q models.Quote) string {
	out := StyleQuote.Render("“"+q.Quote+"”") + "\n" + StyleSubtle.Render("  — "+q.Author)
	if q.Source == models.QuoteSourceFallback {
		out += StyleSubtle.Render(" (offline)")
	}
	return out
}
