/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephgoksu/fitcoach/internal/app"
	"github.com/josephgoksu/fitcoach/internal/ui"
)

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints the friendly message, or the technical error with --verbose.
func PrintError(userMsg string, technicalErr error) {
	if isVerbose() && technicalErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
		return
	}
	fmt.Fprintln(os.Stderr, userMsg)
}

// LogError logs an error without printing to stderr if verbose mode is off.
func LogError(msg string, err error) {
	if !isVerbose() {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)
	}
}

// errReported marks a failure already shown to the user.
var errReported = errors.New("already reported")

// reportFailure prints a failed GenerateResult and returns errReported.
func reportFailure(res *app.GenerateResult) error {
	if isJSON() {
		_ = printJSON(res)
		return errReported
	}
	body := res.Message
	if res.Hint != "" {
		body += "\n\n" + res.Hint
	}
	fmt.Fprintln(os.Stderr, ui.RenderErrorPanel("Could not generate your plan", body))
	return errReported
}
