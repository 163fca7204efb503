/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/imagegen"
	"github.com/josephgoksu/fitcoach/internal/ui"
)

var imageCmd = &cobra.Command{
	Use:   "image <exercise or meal>",
	Short: "Generate an illustration for an exercise or meal",
	Long: `Generate an illustration for an exercise or meal.

Without a Gemini key, or when the model returns no image, a labelled
placeholder is written instead.`,
	Example: `  fitcoach image "Push-ups"
  fitcoach image "Greek yogurt with berries" -o breakfast.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject := strings.TrimSpace(args[0])
		out, _ := cmd.Flags().GetString("output")

		appCtx, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = appCtx.Close() }()

		img := app.NewMediaAppWith(appCtx, nil, nil, appCtx.NewImageGenerator(cmd.Context())).Image(cmd.Context(), subject)
		if img.URL != "" && len(img.Data) == 0 {
			if isJSON() {
				return printJSON(img)
			}
			fmt.Println(img.URL)
			return nil
		}

		if out == "" {
			out = imageFileName(subject, img)
		}
		if err := os.WriteFile(out, img.Data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		if isJSON() {
			return printJSON(map[string]any{"path": out, "mimeType": img.MIMEType, "placeholder": img.Placeholder})
		}
		msg := "✓ Image saved to " + out
		if img.Placeholder {
			msg += " (placeholder)"
		}
		fmt.Println(ui.StyleSuccess.Render(msg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.Flags().StringP("output", "o", "", "file to write (default derived from the subject)")
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func imageFileName(subject string, img imagegen.Image) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(subject), "-"), "-")
	if slug == "" {
		slug = "image"
	}
	switch img.MIMEType {
	case "image/jpeg":
		return slug + ".jpg"
	case "image/webp":
		return slug + ".webp"
	case "image/svg+xml":
		return slug + ".svg"
	default:
		return slug + ".png"
	}
}
