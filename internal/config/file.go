package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the optional TOML configuration file.
// Pointer fields distinguish "unset" from zero values.
type FileConfig struct {
	Sound        *bool   `toml:"sound"`
	ExportDir    *string `toml:"export-dir"`
	SaveDialog   *bool   `toml:"save-dialog"`
	Fullscreen   *bool   `toml:"fullscreen"`
	ExitOnFinish *bool   `toml:"exit-on-finish"`
	Seed         *int64  `toml:"seed"`
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultPath returns the default TOML config path.
func DefaultPath() string {
	return filepath.Join(XDGConfigHome(), "fitts", "config.toml")
}

// DefaultTemplate is written by `fitts config` when no file exists yet.
func DefaultTemplate() string {
	return `# fitts configuration

# Play a short tone on hits and timeouts.
sound = true

# Directory results are written to when the save dialog is disabled or cancelled.
export-dir = "."

# Ask where to save resultsVisual.csv at the end of a session.
save-dialog = true

fullscreen = false

# Close the window once results are exported.
exit-on-finish = false

# Fixed RNG seed for reproducible sessions (0 picks a random seed).
seed = 0
`
}
