/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/josephgoksu/fitcoach/internal/logger"
	"github.com/josephgoksu/fitcoach/internal/observability"
	"github.com/josephgoksu/fitcoach/types"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// version is the application version.
	version = "0.1.0"

	shutdownTracing = func(context.Context) error { return nil }
)

// GetVersion returns the build version.
func GetVersion() string {
	return version
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fitcoach",
	Short: "fitcoach - AI fitness and diet plans from your terminal",
	Long: `fitcoach turns a short fitness profile into a personalized weekly workout
and diet plan using a generative AI model.

Plans are saved locally so they can be shown again, narrated, illustrated
or exported to PDF. The same features are available over HTTP (serve) and
to AI assistants over MCP (mcp).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		logger.Setup(os.Stderr, cfg.Log, isVerbose())
		logger.SetVersion(version)
		logger.SetCommand(cmd.CommandPath())
		logger.SetDataDir(cfg.DataDir)
		shutdownTracing = observability.InitOTel(cmd.Context(), cfg.Tracing, version)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return shutdownTracing(context.Background())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.HandlePanic()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			PrintError("Error: "+err.Error(), err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.fitcoach.yaml or ~/.fitcoach/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "print machine-readable JSON")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for saved plans and caches")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("data-dir"))

	rootCmd.Version = version
}

// GetConfig returns the loaded application configuration.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
