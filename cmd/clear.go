/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/ui"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved plan and profile",
	Long:  "Delete the saved plan and profile. The cached quote of the day is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force && !isJSON() && ui.IsInteractive() && !confirm("Delete the saved plan and profile? [y/N] ") {
			fmt.Println("Cancelled.")
			return nil
		}

		appCtx, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = appCtx.Close() }()

		if err := app.NewPlanApp(appCtx).Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear saved plan: %w", err)
		}
		if isJSON() {
			return printJSON(map[string]bool{"success": true})
		}
		fmt.Println(ui.StyleSuccess.Render("✓ Saved plan and profile cleared."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolP("force", "f", false, "do not ask for confirmation")
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
