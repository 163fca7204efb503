/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/export"
	"github.com/josephgoksu/fitcoach/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved plan to PDF",
	Example: `  fitcoach export
  fitcoach export -o ~/Desktop/plan.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		appCtx, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = appCtx.Close() }()

		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		path, err := app.NewMediaAppWith(appCtx, nil, nil, nil).SavePDF(cmd.Context(), out)
		if errors.Is(err, app.ErrNoSavedPlan) {
			fmt.Fprintln(os.Stderr, "No saved plan to export. Run `fitcoach generate -i` first.")
			return errReported
		}
		if err != nil {
			return fmt.Errorf("export PDF: %w", err)
		}

		if isJSON() {
			return printJSON(map[string]string{"path": path})
		}
		fmt.Println(ui.StyleSuccess.Render("✓ Plan exported to " + path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", export.DefaultFileName, "PDF file to write")
}
