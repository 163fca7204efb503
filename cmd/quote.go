/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/ui"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print the motivational quote of the day",
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = appCtx.Close() }()

		q := app.NewMediaAppWith(appCtx, appCtx.NewQuoteService(), nil, nil).DailyQuote(cmd.Context())
		if isJSON() {
			return printJSON(q)
		}
		fmt.Println(ui.RenderQuote(q))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}
