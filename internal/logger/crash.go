/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package logger configures structured logging and records crash reports.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/josephgoksu/fitcoach/internal/utils"
)

const (
	// CrashLogDir is the crash report directory inside the data directory.
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the number of reports kept; older ones are pruned.
	MaxCrashLogs = 10

	crashPrefix = "crash_"
	crashSuffix = ".log"
)

// crashState is what a crash report includes beyond the panic itself.
type crashState struct {
	mu         sync.RWMutex
	dataDir    string
	version    string
	command    string
	profile    string
	lastPrompt string
}

var state = &crashState{}

// SetDataDir sets the directory crash reports are written under.
func SetDataDir(dir string) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.dataDir = dir
}

// SetVersion records the build version.
func SetVersion(version string) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.version = version
}

// SetCommand records the command being executed.
func SetCommand(cmd string) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.command = cmd
}

// SetProfileSummary records a one-line description of the profile being planned for.
func SetProfileSummary(summary string) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.profile = utils.Truncate(strings.TrimSpace(summary), 500)
}

// SetLastPrompt records the last prompt sent to a model.
func SetLastPrompt(prompt string) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.lastPrompt = utils.Truncate(prompt, 2000)
}

// CrashReport is one recovered panic.
type CrashReport struct {
	Timestamp  time.Time
	Version    string
	Command    string
	PanicValue string
	Stack      string
	Profile    string
	LastPrompt string
	Platform   string
}

// HandlePanic recovers a panic, writes a crash report and exits with status 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	report := newCrashReport(r)
	path, err := writeCrashReport(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, report.Stack)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nfitcoach hit an unexpected error.\n\n")
	fmt.Fprintf(os.Stderr, "A crash log has been saved to:\n  %s\n\n", path)
	fmt.Fprintf(os.Stderr, "Please attach it when reporting the issue at:\n  https://github.com/josephgoksu/fitcoach/issues\n\n")
	os.Exit(1)
}

func newCrashReport(panicValue any) CrashReport {
	state.mu.RLock()
	defer state.mu.RUnlock()

	return CrashReport{
		Timestamp:  time.Now(),
		Version:    state.version,
		Command:    state.command,
		PanicValue: fmt.Sprintf("%v", panicValue),
		Stack:      string(debug.Stack()),
		Profile:    state.profile,
		LastPrompt: state.lastPrompt,
		Platform:   fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
}

func crashDir() string {
	state.mu.RLock()
	dir := state.dataDir
	state.mu.RUnlock()
	if dir == "" {
		dir = ".fitcoach"
	}
	return filepath.Join(dir, CrashLogDir)
}

func writeCrashReport(report CrashReport) (string, error) {
	dir := crashDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}
	if err := pruneCrashLogs(dir, MaxCrashLogs-1); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to prune old crash logs: %v\n", err)
	}

	path := filepath.Join(dir, crashPrefix+report.Timestamp.Format("20060102_150405")+crashSuffix)
	if err := os.WriteFile(path, []byte(report.Format()), 0644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

// Format renders the report as plain text.
func (r CrashReport) Format() string {
	rule := strings.Repeat("-", 80)
	var sb strings.Builder
	sb.WriteString("FITCOACH CRASH LOG\n\n")
	fmt.Fprintf(&sb, "Timestamp: %s\n", r.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Version:   %s\n", r.Version)
	fmt.Fprintf(&sb, "Command:   %s\n", r.Command)
	fmt.Fprintf(&sb, "Platform:  %s\n", r.Platform)

	sections := []struct{ title, body string }{
		{"PANIC VALUE", r.PanicValue},
		{"STACK TRACE", r.Stack},
		{"PROFILE", r.Profile},
		{"LAST PROMPT", r.LastPrompt},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n%s\n%s\n%s\n%s\n", rule, s.title, rule, strings.TrimRight(s.body, "\n"))
	}
	return sb.String()
}

// pruneCrashLogs deletes the oldest reports so at most keep remain.
func pruneCrashLogs(dir string, keep int) error {
	logs, err := listCrashLogs(dir)
	if err != nil {
		return err
	}
	for len(logs) > keep {
		if err := os.Remove(logs[0]); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", filepath.Base(logs[0]), err)
		}
		logs = logs[1:]
	}
	return nil
}

func listCrashLogs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var logs []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, crashPrefix) && strings.HasSuffix(name, crashSuffix) {
			logs = append(logs, filepath.Join(dir, name))
		}
	}
	// Names embed the timestamp, so lexical order is chronological.
	sort.Strings(logs)
	return logs, nil
}

// ListCrashLogs returns the stored crash reports, oldest first.
func ListCrashLogs() ([]string, error) {
	return listCrashLogs(crashDir())
}
