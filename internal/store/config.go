package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"datewheel-cli/internal/datewheel"
)

type GlobalConfig struct {
	// Picker holds host defaults for new pickers. Absent fields fall back to
	// the built-in defaults. The selection itself is never written here.
	Picker *datewheel.Overrides `json:"picker,omitempty"`

	// Journal is the default sqlite journal path (empty disables journaling).
	Journal string `json:"journal,omitempty"`

	// Format is the default CLI output format (json|edn|text).
	Format string `json:"format,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Glyphs selects the selection markers ("unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`

	SelectedBg *AdaptiveColor `json:"selectedBg,omitempty"`
	SelectedFg *AdaptiveColor `json:"selectedFg,omitempty"`
}

type AdaptiveColor struct {
	Light string `json:"light,omitempty"`
	Dark  string `json:"dark,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.datewheel).
	if v := strings.TrimSpace(os.Getenv("DATEWHEEL_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".datewheel"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultJournalPath is where `--journal default` points.
func DefaultJournalPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "journal.sqlite"), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PickerConfig applies the file's picker section over the built-in defaults.
func (c *GlobalConfig) PickerConfig() datewheel.Config {
	def := datewheel.DefaultConfig()
	if c == nil || c.Picker == nil {
		return def
	}
	return c.Picker.Apply(def)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return errors.New("save config: nil config")
	}
	if cfg.Picker != nil {
		if err := cfg.Picker.Apply(datewheel.DefaultConfig()).Validate(); err != nil {
			return err
		}
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Keep the previous file around as config.json.bak; failures here are ignored.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}

	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
