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
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/josephgoksu/fitcoach/internal/config"
	"github.com/josephgoksu/fitcoach/internal/llm"
	"github.com/josephgoksu/fitcoach/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (secrets masked)",
	RunE: func(cmd *cobra.Command, args []string) error {
		status := buildConfigStatus()
		if isJSON() {
			return printJSON(status)
		}
		return writeYAML(os.Stdout, status)
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [api-key]",
	Short: "Save the model provider, model chain and API key to ~/.fitcoach/config.yaml",
	Long: `Save the model provider, model chain and API key to ~/.fitcoach/config.yaml.

When the key is omitted it is read from the terminal without echo.`,
	Example: `  fitcoach config set-key --provider gemini
  fitcoach config set-key --provider openai --models gpt-4o-mini sk-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, _ := cmd.Flags().GetString("provider")
		models, _ := cmd.Flags().GetStringSlice("models")

		p, err := llm.ValidateProvider(provider)
		if err != nil {
			return err
		}

		key := ""
		if len(args) == 1 {
			key = strings.TrimSpace(args[0])
		} else if llm.RequiresAPIKey(p) {
			if !ui.IsInteractive() {
				return errors.New("pass the API key as an argument when not running in a terminal")
			}
			fmt.Fprintf(os.Stderr, "%s API key: ", provider)
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("read key: %w", err)
			}
			key = strings.TrimSpace(string(raw))
		}
		if llm.RequiresAPIKey(p) && llm.IsPlaceholderKey(key) {
			return fmt.Errorf("a real %s API key is required", provider)
		}

		path, err := config.SaveGlobalLLMConfig(string(p), models, key)
		if err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		if isJSON() {
			return printJSON(map[string]string{"path": path, "provider": string(p)})
		}
		fmt.Println(ui.StyleSuccess.Render("✓ Saved to " + path))
		return nil
	},
}

var configModelsCmd = &cobra.Command{
	Use:   "models [provider]",
	Short: "List the default model chain of each provider",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := llm.ModelRegistry
		if len(args) == 1 {
			p, err := llm.ValidateProvider(args[0])
			if err != nil {
				return err
			}
			registry = llm.GetModelsForProvider(string(p))
		}
		if isJSON() {
			return printJSON(registry)
		}
		table := &ui.Table{Headers: []string{"Provider", "Model", "Order", "Note"}, MaxWidth: 48}
		for _, m := range registry {
			table.Rows = append(table.Rows, []string{m.Provider, m.ID, fmt.Sprint(m.Priority), m.Note})
		}
		fmt.Println(table.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetKeyCmd, configModelsCmd)
	configSetKeyCmd.Flags().String("provider", string(llm.DefaultProvider), "model provider: gemini, openai, ollama or anthropic")
	configSetKeyCmd.Flags().StringSlice("models", nil, "model identifiers in fallback order")
}

type configStatus struct {
	ConfigFile   string   `json:"configFile" yaml:"configFile"`
	DataDir      string   `json:"dataDir" yaml:"dataDir"`
	Storage      string   `json:"storage" yaml:"storage"`
	Provider     string   `json:"provider" yaml:"provider"`
	Models       []string `json:"models" yaml:"models"`
	APIKey       string   `json:"apiKey" yaml:"apiKey"`
	NarrationKey string   `json:"narrationKey" yaml:"narrationKey"`
	ServerPort   int      `json:"serverPort" yaml:"serverPort"`
	Telemetry    bool     `json:"telemetry" yaml:"telemetry"`
	Tracing      bool     `json:"tracing" yaml:"tracing"`
	LLMError     string   `json:"llmError,omitempty" yaml:"llmError,omitempty"`
}

func buildConfigStatus() configStatus {
	cfg := GetConfig()
	status := configStatus{
		ConfigFile:   viper.ConfigFileUsed(),
		DataDir:      cfg.DataDir,
		Storage:      cfg.Storage.Backend,
		NarrationKey: maskKey(config.ResolveNarrationKey()),
		ServerPort:   cfg.Server.Port,
		Telemetry:    cfg.Telemetry.Enabled && cfg.Telemetry.APIKey != "",
		Tracing:      cfg.Tracing.Enabled,
	}
	llmCfg, err := config.LoadLLMConfig()
	if err != nil {
		status.LLMError = err.Error()
		return status
	}
	status.Provider = string(llmCfg.Provider)
	status.Models = llmCfg.Models
	status.APIKey = maskKey(llmCfg.APIKey)
	return status
}

// maskKey keeps the last four characters of a secret.
func maskKey(key string) string {
	switch {
	case key == "":
		return "(not set)"
	case len(key) <= 8:
		return "****"
	default:
		return "****" + key[len(key)-4:]
	}
}
