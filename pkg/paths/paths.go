package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for minifiles
	EnvDataDir = "MINIFILES_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for minifiles
	EnvConfigDir = "MINIFILES_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for minifiles
	EnvStateDir = "MINIFILES_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names inside the XDG directories
const (
	// DataDirName is the directory name under XDG_DATA_HOME. It matches the
	// layout of the editor plugin so both share one trash.
	DataDirName = "mini.files"

	// AppDirName is the directory name under XDG_CONFIG_HOME and XDG_STATE_HOME
	AppDirName = "minifiles"

	// TrashDirName is the subdirectory of the data dir receiving deleted entries
	TrashDirName = "trash"

	// ConfigFileName is the user configuration file name
	ConfigFileName = "config.toml"

	// ProjectConfigFileName is looked up in the working directory
	ProjectConfigFileName = ".minifiles.toml"

	// LogFileName is the name of the log file
	LogFileName = "minifiles.log"
)

// Paths provides the locations minifiles reads from and writes to
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	TrashDir() string
	ConfigFilePath() string
	LogFilePath() string
}

type paths struct {
	dataDir   string
	configDir string
	stateDir  string
}

// New creates a Paths instance honoring environment overrides
func New() Paths {
	p := &paths{
		dataDir:   filepath.Join(xdg.DataHome, DataDirName),
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		stateDir:  filepath.Join(xdg.StateHome, AppDirName),
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = ExpandHome(dir)
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	}
	return p
}

// DataDir returns the data directory (<xdg data>/mini.files)
func (p *paths) DataDir() string { return p.dataDir }

// ConfigDir returns the config directory (<xdg config>/minifiles)
func (p *paths) ConfigDir() string { return p.configDir }

// StateDir returns the state directory (<xdg state>/minifiles)
func (p *paths) StateDir() string { return p.stateDir }

// TrashDir returns the directory deleted entries are moved into
func (p *paths) TrashDir() string { return filepath.Join(p.dataDir, TrashDirName) }

// ConfigFilePath returns the user configuration file path
func (p *paths) ConfigFilePath() string { return filepath.Join(p.configDir, ConfigFileName) }

// LogFilePath returns the log file path
func (p *paths) LogFilePath() string { return filepath.Join(p.stateDir, LogFileName) }

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not expanded
	return path
}
