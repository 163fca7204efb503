/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package policy

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// DefaultPoliciesDir is the policies directory name inside the data directory.
const DefaultPoliciesDir = "policies"

//go:embed default.rego
var defaultPolicy string

// PolicyFile represents a loaded Rego policy file.
type PolicyFile struct {
	// Path is the path the policy was loaded from, used in Rego error messages.
	Path string `json:"path"`
	// Name is the base name of the file without extension.
	Name string `json:"name"`
	// Content is the raw Rego source code.
	Content string `json:"content"`
}

// DefaultPolicy returns the built-in plan review policy.
func DefaultPolicy() *PolicyFile {
	return &PolicyFile{Path: "builtin/default.rego", Name: "default", Content: defaultPolicy}
}

// Loader scans and loads .rego policy files from a directory.
// It uses afero so tests can run against an in-memory filesystem.
type Loader struct {
	fs      afero.Fs
	baseDir string
}

// NewLoader creates a new policy loader using the provided filesystem.
func NewLoader(fs afero.Fs, baseDir string) *Loader {
	return &Loader{
		fs:      fs,
		baseDir: baseDir,
	}
}

// LoadAll loads every .rego file under the directory, sorted by path.
// Files ending in _test.rego are skipped. A missing directory yields no policies.
func (l *Loader) LoadAll() ([]*PolicyFile, error) {
	if l.baseDir == "" {
		return nil, nil
	}
	exists, err := afero.DirExists(l.fs, l.baseDir)
	if err != nil {
		return nil, fmt.Errorf("check policies directory: %w", err)
	}
	if !exists {
		return nil, nil
	}

	var policies []*PolicyFile
	err = afero.Walk(l.fs, l.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		name := info.Name()
		if !strings.HasSuffix(name, ".rego") || strings.HasSuffix(name, "_test.rego") {
			return nil
		}

		policy, err := l.loadFile(path)
		if err != nil {
			return fmt.Errorf("load policy %s: %w", path, err)
		}
		policies = append(policies, policy)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk policies directory: %w", err)
	}

	sort.Slice(policies, func(i, j int) bool { return policies[i].Path < policies[j].Path })
	return policies, nil
}

func (l *Loader) loadFile(path string) (*PolicyFile, error) {
	file, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return &PolicyFile{
		Path:    path,
		Name:    strings.TrimSuffix(filepath.Base(path), ".rego"),
		Content: string(content),
	}, nil
}

// GetPoliciesPath returns the policies directory inside dataDir.
func GetPoliciesPath(dataDir string) string {
	return filepath.Join(dataDir, DefaultPoliciesDir)
}
