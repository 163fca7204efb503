/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/logger"
	"github.com/josephgoksu/fitcoach/internal/ui"
	"github.com/josephgoksu/fitcoach/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a weekly workout and diet plan",
	Long: `Generate a personalized 7-day workout and diet plan.

The profile comes from a YAML/JSON file (--profile), the interactive form (-i),
or the last saved profile (--reuse). A successful plan replaces the saved one.`,
	Example: `  fitcoach generate -i
  fitcoach generate --profile ana.yaml
  fitcoach generate --reuse --json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("profile", "p", "", "profile file (YAML or JSON, - for stdin)")
	generateCmd.Flags().BoolP("interactive", "i", false, "fill in the profile with an interactive form")
	generateCmd.Flags().Bool("reuse", false, "regenerate from the saved profile")
	generateCmd.MarkFlagsMutuallyExclusive("profile", "reuse")
	generateCmd.MarkFlagsMutuallyExclusive("interactive", "reuse")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	profilePath, _ := cmd.Flags().GetString("profile")
	interactive, _ := cmd.Flags().GetBool("interactive")
	reuse, _ := cmd.Flags().GetBool("reuse")

	appCtx, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = appCtx.Close() }()
	plans := app.NewPlanApp(appCtx)

	var profile models.UserProfile
	switch {
	case reuse:
		saved, err := appCtx.Repo.LoadProfile(ctx)
		if err != nil {
			return fmt.Errorf("no saved profile to reuse (run `fitcoach generate -i` first): %w", err)
		}
		profile = *saved
	case profilePath != "":
		if profile, err = readProfile(profilePath); err != nil {
			return err
		}
	case interactive || ui.IsInteractive():
		if saved, err := appCtx.Repo.LoadProfile(ctx); err == nil {
			profile = *saved
		}
		if profile, err = profileForm(profile); err != nil {
			return err
		}
	default:
		return errors.New("no profile given: use --profile <file>, -i or --reuse")
	}

	logger.SetProfileSummary(fmt.Sprintf("%d/%s/%s/%s/%s", profile.Age, profile.FitnessGoal,
		profile.FitnessLevel, profile.WorkoutLocation, profile.DietaryPreference))

	var spinner *ui.Spinner
	if !isJSON() && ui.IsInteractive() {
		spinner = ui.NewSpinner(os.Stderr, "Generating your plan...")
		spinner.Start()
	}
	res := plans.Generate(ctx, profile)
	if spinner != nil {
		spinner.Stop()
	}

	if !res.Success {
		return reportFailure(res)
	}
	if isJSON() {
		return printJSON(res)
	}

	ui.RenderPageHeader(os.Stdout, "Your Personalized Fitness Plan",
		fmt.Sprintf("model %s, %d attempt(s)", res.Model, res.Attempts))
	fmt.Print(ui.RenderWarnings(res.Warnings))
	fmt.Println(ui.RenderPlan(res.Plan, res.Profile, ui.TerminalWidth()))
	fmt.Println(ui.StyleSubtle.Render("Saved. Use `fitcoach show`, `fitcoach export` or `fitcoach narrate`."))
	return nil
}
