package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-workspace configuration file.
const ConfigFileName = ".primer.yml"

// DefaultScratchFile is the scratch file name used when the
// configuration does not override it.
const DefaultScratchFile = "temp_example.txt"

// Config is the per-workspace configuration stored in .primer.yml.
type Config struct {
	// ScratchFile is the file name used by the file lessons.
	ScratchFile string `yaml:"scratch_file"`
	// Lessons is the default glob pattern selecting which lessons run.
	Lessons string `yaml:"lessons"`
	// Verbose enables debug logging for runs in this workspace.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when no .primer.yml exists.
func DefaultConfig() Config {
	return Config{
		ScratchFile: DefaultScratchFile,
		Lessons:     "**",
	}
}

// LoadConfig reads .primer.yml from dir. A missing file yields the
// defaults; a malformed file is an error.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}

	// Empty fields fall back to defaults so a partial file stays valid.
	if cfg.ScratchFile == "" {
		cfg.ScratchFile = DefaultScratchFile
	}
	if cfg.Lessons == "" {
		cfg.Lessons = "**"
	}
	return cfg, nil
}

// SaveConfig writes cfg to .primer.yml in dir atomically.
func SaveConfig(dir string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ConfigFileName, err)
	}
	return writeFileAtomic(filepath.Join(dir, ConfigFileName), data, 0644)
}
