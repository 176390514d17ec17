package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/minifiles/pkg/paths"
)

// Environment points every minifiles directory at a fresh temp location
type Environment struct {
	Root      string
	DataDir   string
	ConfigDir string
	StateDir  string
}

// NewEnvironment isolates the test from the user's directories. The
// variables are restored when the test completes.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		Root:      root,
		DataDir:   CreateDir(t, root, "data"),
		ConfigDir: CreateDir(t, root, "config"),
		StateDir:  CreateDir(t, root, "state"),
	}

	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	return env
}

// TrashDir is the default trash location inside the environment
func (e *Environment) TrashDir() string {
	return filepath.Join(e.DataDir, paths.TrashDirName)
}

// ConfigFile writes content as the user config file and returns its path
func (e *Environment) ConfigFile(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, e.ConfigDir, paths.ConfigFileName, content)
}
