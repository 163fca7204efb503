/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/josephgoksu/fitcoach/internal/config"
	"github.com/josephgoksu/fitcoach/types"
)

// projectConfigFile is looked up in the working directory.
const projectConfigFile = ".fitcoach.yaml"

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// InitConfig reads in config files and ENV variables if set.
// Precedence: flags > FITCOACH_* env > ./.fitcoach.yaml > ~/.fitcoach/config.yaml > defaults.
func InitConfig() {
	// .env is optional; .env.local mirrors the web app's convention.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())
	viper.SetConfigType("yaml")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			HandleFatalError(fmt.Sprintf("Cannot read config file %s.", cfgFile), err)
		}
	} else {
		for i, path := range configSearchPaths() {
			viper.SetConfigFile(path)
			read := viper.MergeInConfig
			if i == 0 {
				read = viper.ReadInConfig
			}
			if err := read(); err != nil {
				fmt.Fprintln(os.Stderr, "Error reading config file:", path, "-", err)
			}
		}
	}
	if viper.GetBool("verbose") && viper.ConfigFileUsed() != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	cfg, err := config.LoadAppConfig()
	if err != nil {
		HandleFatalError("Configuration is invalid. Run with --verbose for details.", err)
	}
	GlobalAppConfig = cfg
}

// configSearchPaths returns the existing config files, lowest precedence first.
func configSearchPaths() []string {
	var paths []string
	if dir, err := config.GetGlobalConfigDir(); err == nil {
		global := filepath.Join(dir, config.GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			paths = append(paths, global)
		}
	}
	if _, err := os.Stat(projectConfigFile); err == nil {
		paths = append(paths, projectConfigFile)
	}
	return paths
}

// reloadConfig re-reads the config files after a change on disk.
func reloadConfig() (types.AppConfig, error) {
	for i, path := range configSearchPaths() {
		viper.SetConfigFile(path)
		read := viper.MergeInConfig
		if i == 0 {
			read = viper.ReadInConfig
		}
		if err := read(); err != nil {
			return types.AppConfig{}, err
		}
	}
	return config.LoadAppConfig()
}
