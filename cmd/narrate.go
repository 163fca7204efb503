/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/narration"
	"github.com/josephgoksu/fitcoach/internal/ui"
)

var narrateCmd = &cobra.Command{
	Use:   "narrate [text]",
	Short: "Read a section of the saved plan (or any text) aloud to an MP3 file",
	Example: `  fitcoach narrate --section workout
  fitcoach narrate --section diet -o diet.mp3
  fitcoach narrate "Keep your back straight"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sectionName, _ := cmd.Flags().GetString("section")
		out, _ := cmd.Flags().GetString("output")

		section, err := narration.ParseSection(sectionName)
		if err != nil {
			return err
		}
		if out == "" {
			out = fmt.Sprintf("narration-%s.mp3", section)
			if len(args) == 1 {
				out = "narration.mp3"
			}
		}

		appCtx, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = appCtx.Close() }()
		media := app.NewMediaAppWith(appCtx, nil, appCtx.NewNarrationClient(), nil)

		var audio []byte
		if len(args) == 1 {
			audio, err = media.Narrate(cmd.Context(), strings.TrimSpace(args[0]))
		} else {
			audio, err = media.NarrateSection(cmd.Context(), section)
		}
		switch {
		case errors.Is(err, app.ErrNoSavedPlan):
			fmt.Fprintln(os.Stderr, "No saved plan to narrate. Run `fitcoach generate -i` first.")
			return errReported
		case err != nil:
			PrintError(ui.StyleWarning.Render(narration.UnavailableMessage), err)
			return errReported
		}

		if err := os.WriteFile(out, audio, 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		if isJSON() {
			return printJSON(map[string]any{"path": out, "bytes": len(audio)})
		}
		fmt.Println(ui.StyleSuccess.Render("✓ Narration saved to " + out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(narrateCmd)
	narrateCmd.Flags().StringP("section", "s", string(narration.SectionWorkout), "plan section: workout, diet, tips or motivation")
	narrateCmd.Flags().StringP("output", "o", "", "MP3 file to write (default narration-<section>.mp3)")
}
