/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/config"
	"github.com/josephgoksu/fitcoach/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the JSON HTTP API used by the web front end.

Endpoints:
  POST   /api/plans               generate a plan from a profile
  POST   /api/plans/regenerate    regenerate from the saved profile
  GET    /api/plans/current       saved plan and profile
  DELETE /api/plans/current       clear the saved plan and profile
  GET    /api/plans/current/pdf   saved plan as PDF
  GET    /api/daily-quote         quote of the day
  POST   /api/tts                 {text} -> audio/mpeg
  POST   /api/images              {subject} -> image

Edits to the model list in the config file apply without a restart.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (default from server.port)")
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := *GetConfig()
	if p := viper.GetInt("server.port"); p != 0 {
		cfg.Server.Port = p
	}

	appCtx, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = appCtx.Close() }()

	watchModelConfig(appCtx)

	srv := server.New(cfg.Server, app.NewPlanApp(appCtx), app.NewMediaApp(ctx, appCtx), version)

	var wg sync.WaitGroup
	errChan := make(chan error, 1)
	srv.Start(&wg, errChan)
	fmt.Fprintf(os.Stderr, "fitcoach API listening on %s\n", srv.Addr())

	select {
	case err = <-errChan:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		slog.Warn("server shutdown", "error", serr)
	}
	wg.Wait()
	return err
}

// watchModelConfig reloads the LLM settings when the config file changes.
func watchModelConfig(appCtx *app.Context) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if _, err := reloadConfig(); err != nil {
			slog.Warn("config reload failed; keeping previous settings", "file", e.Name, "error", err)
			return
		}
		llmCfg, err := config.LoadLLMConfig()
		if err != nil {
			slog.Warn("invalid LLM config after reload", "error", err)
			return
		}
		appCtx.SetLLMConfig(llmCfg)
		slog.Info("model configuration reloaded", "provider", string(llmCfg.Provider), "models", llmCfg.Models)
	})
	viper.WatchConfig()
}
