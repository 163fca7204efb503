/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/models"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing plan tools to AI assistants",
	Long: `Start a Model Context Protocol (MCP) server over stdio.

Tools:
  generate_plan   generate and save a plan from a profile
  get_plan        return the saved plan and profile
  clear_plan      delete the saved plan and profile
  daily_quote     quote of the day`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// EmptyParams is the argument type of tools without inputs.
type EmptyParams struct{}

func mcpJSONResponse(v any) (*mcpsdk.CallToolResultFor[any], error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcpErrorResponse(err)
	}
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// mcpErrorResponse reports a tool failure in the result so the model can see it.
func mcpErrorResponse(err error) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}, nil
}

func runMCPServer(ctx context.Context) error {
	// stdout carries JSON-RPC; status goes to stderr.
	fmt.Fprintln(os.Stderr, "fitcoach MCP server starting...")

	appCtx, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = appCtx.Close() }()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "fitcoach", Version: version}, &mcpsdk.ServerOptions{})
	registerMCPTools(server, app.NewPlanApp(appCtx), app.NewMediaAppWith(appCtx, appCtx.NewQuoteService(), nil, nil))

	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func registerMCPTools(server *mcpsdk.Server, plans *app.PlanApp, media *app.MediaApp) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name: "generate_plan",
		Description: `Generate a 7-day workout and diet plan and save it.
Required: name, age (10-100), gender (male|female|other), height cm (100-250), weight kg (30-200),
fitnessGoal (weight-loss|muscle-gain|maintenance|endurance), fitnessLevel (beginner|intermediate|advanced),
workoutLocation (home|gym|outdoor), dietaryPreference (vegetarian|non-vegetarian|vegan|keto).
Optional: medicalHistory, stressLevel (low|medium|high).`,
	}, func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[models.UserProfile]) (*mcpsdk.CallToolResultFor[any], error) {
		res := plans.Generate(ctx, params.Arguments)
		if !res.Success {
			return mcpErrorResponse(fmt.Errorf("%s %s", res.Message, res.Hint))
		}
		return mcpJSONResponse(res)
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get_plan",
		Description: "Return the saved fitness plan and the profile it was generated for.",
	}, func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[EmptyParams]) (*mcpsdk.CallToolResultFor[any], error) {
		saved, err := plans.Current(ctx)
		if errors.Is(err, app.ErrNoSavedPlan) {
			return mcpErrorResponse(errors.New("no saved plan; call generate_plan first"))
		}
		if err != nil {
			return mcpErrorResponse(err)
		}
		return mcpJSONResponse(saved)
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "clear_plan",
		Description: "Delete the saved plan and profile.",
	}, func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[EmptyParams]) (*mcpsdk.CallToolResultFor[any], error) {
		if err := plans.Clear(ctx); err != nil {
			return mcpErrorResponse(err)
		}
		return mcpJSONResponse(map[string]bool{"success": true})
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "daily_quote",
		Description: "Return the motivational quote of the day.",
	}, func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[EmptyParams]) (*mcpsdk.CallToolResultFor[any], error) {
		return mcpJSONResponse(media.DailyQuote(ctx))
	})
}
