// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/folderize/pkg/config"
	"github.com/arthur-debert/folderize/pkg/filesystem"
	"github.com/arthur-debert/folderize/pkg/trash"
	"github.com/arthur-debert/folderize/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a complete test environment with all dependencies
type TestEnvironment struct {
	// WorkspaceRoot is the directory targets live in.
	WorkspaceRoot string

	// FS is the filesystem under test.
	FS types.FS

	// Trasher is rooted inside the environment so trashed files never leave
	// the sandbox.
	Trasher *trash.Trasher

	// Config is a headless configuration scoped to the workspace root.
	Config *config.Config

	// Environment type
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.FS = NewTestFS()
		env.WorkspaceRoot = "/work"
		if err := env.FS.MkdirAll(env.WorkspaceRoot, 0755); err != nil {
			t.Fatalf("failed to create workspace root: %v", err)
		}
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		env.WorkspaceRoot = t.TempDir()
	}

	env.Trasher = trash.NewAt(env.FS, filepath.Join(env.WorkspaceRoot, ".trash"))

	cfg := config.Default()
	cfg.Headless = true
	cfg.Workspace.Require = false
	cfg.Workspace.Root = env.WorkspaceRoot
	env.Config = cfg

	return env
}

// WriteFile creates a file under the workspace root and returns its path.
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()
	path := filepath.Join(env.WorkspaceRoot, name)
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// Path returns the absolute path of a name under the workspace root.
func (env *TestEnvironment) Path(name string) string {
	return filepath.Join(env.WorkspaceRoot, name)
}
