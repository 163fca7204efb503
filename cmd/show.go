/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/ui"
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"current"},
	Short:   "Show the saved plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if isJSON() {
			format = "json"
		}

		appCtx, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = appCtx.Close() }()

		saved, err := app.NewPlanApp(appCtx).Current(cmd.Context())
		if errors.Is(err, app.ErrNoSavedPlan) {
			fmt.Fprintln(os.Stderr, "No saved plan yet. Run `fitcoach generate -i` to create one.")
			return errReported
		}
		if err != nil {
			return err
		}
		return renderSaved(os.Stdout, saved, format)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
}

func renderSaved(w io.Writer, saved *app.SavedPlan, format string) error {
	switch format {
	case "json":
		return writeJSON(w, saved)
	case "yaml", "yml":
		return writeYAML(w, saved)
	case "text", "":
		_, err := fmt.Fprintln(w, ui.RenderPlan(saved.Plan, saved.Profile, ui.TerminalWidth()))
		return err
	default:
		return fmt.Errorf("unknown format %q (use text, json or yaml)", format)
	}
}
