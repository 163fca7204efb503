/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/josephgoksu/fitcoach/internal/utils"
	"github.com/josephgoksu/fitcoach/models"
)

// readProfile decodes a YAML or JSON profile. "-" reads stdin.
func readProfile(path string) (models.UserProfile, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return models.UserProfile{}, fmt.Errorf("open profile: %w", err)
		}
		defer f.Close()
		r = f
	}
	return decodeProfile(r)
}

// decodeProfile accepts YAML or JSON; JSON is valid YAML.
func decodeProfile(r io.Reader) (models.UserProfile, error) {
	var p models.UserProfile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("decode profile: %w", err)
	}
	p.Name = strings.TrimSpace(p.Name)
	p.MedicalHistory = strings.TrimSpace(p.MedicalHistory)
	return p, nil
}

func options[T ~string](values ...T) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(utils.HumanizeEnum(string(v)), string(v)))
	}
	return opts
}

func intInRange(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

// profileForm collects a profile interactively, prefilled from initial.
func profileForm(initial models.UserProfile) (models.UserProfile, error) {
	p := initial
	age, height, weight := itoaOrEmpty(p.Age), itoaOrEmpty(p.Height), itoaOrEmpty(p.Weight)
	gender, goal, level := string(p.Gender), string(p.FitnessGoal), string(p.FitnessLevel)
	location, diet, stress := string(p.WorkoutLocation), string(p.DietaryPreference), string(p.StressLevel)

	stressOpts := append([]huh.Option[string]{huh.NewOption("Prefer not to say", "")},
		options(models.StressLow, models.StressMedium, models.StressHigh)...)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&p.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().Title("Age").Placeholder("30").Value(&age).Validate(intInRange(10, 100)),
			huh.NewSelect[string]().Title("Gender").
				Options(options(models.GenderMale, models.GenderFemale, models.GenderOther)...).Value(&gender),
			huh.NewInput().Title("Height (cm)").Placeholder("170").Value(&height).Validate(intInRange(100, 250)),
			huh.NewInput().Title("Weight (kg)").Placeholder("70").Value(&weight).Validate(intInRange(30, 200)),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Fitness Goal").
				Options(options(models.GoalWeightLoss, models.GoalMuscleGain, models.GoalMaintenance, models.GoalEndurance)...).Value(&goal),
			huh.NewSelect[string]().Title("Fitness Level").
				Options(options(models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced)...).Value(&level),
			huh.NewSelect[string]().Title("Workout Location").
				Options(options(models.LocationHome, models.LocationGym, models.LocationOutdoor)...).Value(&location),
			huh.NewSelect[string]().Title("Dietary Preference").
				Options(options(models.DietVegetarian, models.DietNonVegetarian, models.DietVegan, models.DietKeto)...).Value(&diet),
		),
		huh.NewGroup(
			huh.NewText().Title("Medical History (optional)").
				Placeholder("Injuries, conditions, medications").Value(&p.MedicalHistory),
			huh.NewSelect[string]().Title("Stress Level (optional)").Options(stressOpts...).Value(&stress),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return p, err
	}

	p.Name = strings.TrimSpace(p.Name)
	p.MedicalHistory = strings.TrimSpace(p.MedicalHistory)
	p.Age, _ = strconv.Atoi(strings.TrimSpace(age))
	p.Height, _ = strconv.Atoi(strings.TrimSpace(height))
	p.Weight, _ = strconv.Atoi(strings.TrimSpace(weight))
	p.Gender = models.Gender(gender)
	p.FitnessGoal = models.FitnessGoal(goal)
	p.FitnessLevel = models.FitnessLevel(level)
	p.WorkoutLocation = models.WorkoutLocation(location)
	p.DietaryPreference = models.DietaryPreference(diet)
	p.StressLevel = models.StressLevel(stress)
	return p, nil
}

func itoaOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
