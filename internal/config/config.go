package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDirName  = "tailorview"
	configFileName = "config.json"
)

// Valid values for AppConfig.DefaultMode.
const (
	ModeDocument = "document"
	ModeOriginal = "original"
	ModeDiff     = "diff"
)

// Theme holds ANSI-256 color codes for the rendered document and diff panes.
type Theme struct {
	Heading string `json:"heading"`
	Bold    string `json:"bold"`
	Code    string `json:"code"`
	Quote   string `json:"quote"`
	Rule    string `json:"rule"`
	Added   string `json:"added"`
	Removed string `json:"removed"`
	Changed string `json:"changed"`
}

type AppConfig struct {
	DefaultMode string `json:"default_mode"`
	Theme       Theme  `json:"theme"`
}

func DefaultTheme() Theme {
	return Theme{
		Heading: "39",
		Bold:    "213",
		Code:    "114",
		Quote:   "244",
		Rule:    "240",
		Added:   "42",
		Removed: "203",
		Changed: "214",
	}
}

func Load() (AppConfig, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return AppConfig{}, "", err
	}
	cfg, err := LoadFromPath(path)
	return cfg, path, err
}

func LoadFromPath(path string) (AppConfig, error) {
	cfg := AppConfig{
		DefaultMode: ModeDiff,
		Theme:       DefaultTheme(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return AppConfig{}, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.DefaultMode = strings.TrimSpace(cfg.DefaultMode)
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = ModeDiff
	}
	switch cfg.DefaultMode {
	case ModeDocument, ModeOriginal, ModeDiff:
	default:
		return AppConfig{}, fmt.Errorf("default_mode %q must be one of document, original, diff", cfg.DefaultMode)
	}

	cfg.Theme = mergeTheme(DefaultTheme(), cfg.Theme)
	return cfg, nil
}

// mergeTheme fills colors the file left empty with defaults.
func mergeTheme(base, override Theme) Theme {
	pick := func(def, v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return def
		}
		return v
	}
	return Theme{
		Heading: pick(base.Heading, override.Heading),
		Bold:    pick(base.Bold, override.Bold),
		Code:    pick(base.Code, override.Code),
		Quote:   pick(base.Quote, override.Quote),
		Rule:    pick(base.Rule, override.Rule),
		Added:   pick(base.Added, override.Added),
		Removed: pick(base.Removed, override.Removed),
		Changed: pick(base.Changed, override.Changed),
	}
}

func DefaultPath() (string, error) {
	home, err := configHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func configHome() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
