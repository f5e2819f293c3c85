package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the clips file looked up in the user and local config dirs.
const FileName = "clips.yaml"

// Parse decodes and validates a clips YAML document.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks that every clip has a unique, non-empty name.
func (f File) Validate() error {
	seen := make(map[string]bool, len(f.Clips))
	var errs []error
	for i, c := range f.Clips {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("config: clip #%d has no name", i+1))
			continue
		}
		if seen[c.Name] {
			errs = append(errs, fmt.Errorf("config: duplicate clip %q", c.Name))
		}
		seen[c.Name] = true
		if c.DurationMs < 0 {
			errs = append(errs, fmt.Errorf("config: clip %q has negative duration_ms", c.Name))
		}
	}
	return errors.Join(errs...)
}

// Load loads the clips file.
// Search order: customPath -> ~/.cliprect/clips.yaml -> ./configs/clips.yaml -> embedded default
func Load(customPath string) (File, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return File{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		f, err := Parse(data)
		if err != nil {
			return File{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return f, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if f, err := Parse(data); err == nil {
				return f, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if f, err := Parse(data); err == nil {
			return f, nil
		}
	}

	// Use embedded default YAML
	f, err := Parse(defaultClipsYAML)
	if err != nil {
		return DefaultFile(), nil // Fallback to hardcoded if embed fails
	}
	return f, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cliprect", filename)
}
