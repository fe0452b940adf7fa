package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Slot describes one AMS material slot shown in the slot picker.
type Slot struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// Config captures the fields the kiosk panel needs.
type Config struct {
	APIBind       string
	PrintFilesDir string
	PollSeconds   int
	Slots         []Slot
}

const (
	defaultConfigPath    = "~/.config/kiosk/config.toml"
	defaultPrintFilesDir = "~/.local/share/kiosk/print_files"
	defaultAPIBind       = "127.0.0.1:5000"
	defaultPollSeconds   = 3
)

// DefaultSlots is the four-slot AMS layout used when the config file
// does not define its own slot table.
func DefaultSlots() []Slot {
	return []Slot{
		{ID: "1", Name: "Slot 1", Color: "#FF0000"},
		{ID: "2", Name: "Slot 2", Color: "#00FF00"},
		{ID: "3", Name: "Slot 3", Color: "#0000FF"},
		{ID: "4", Name: "Slot 4", Color: "#FFFF00"},
	}
}

// Load locates and parses the kiosk config, falling back to defaults
// when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBind:     defaultAPIBind,
		PollSeconds: defaultPollSeconds,
		Slots:       DefaultSlots(),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.PrintFilesDir = mustExpand(defaultPrintFilesDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBind       string `toml:"api_bind"`
		PrintFilesDir string `toml:"print_files_dir"`
		PollSeconds   int    `toml:"poll_seconds"`
		Slots         []Slot `toml:"slots"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBind = strings.TrimSpace(raw.APIBind)
	if cfg.APIBind == "" {
		cfg.APIBind = defaultAPIBind
	}

	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}

	cfg.PrintFilesDir = strings.TrimSpace(raw.PrintFilesDir)
	if cfg.PrintFilesDir == "" {
		cfg.PrintFilesDir = defaultPrintFilesDir
	}
	cfg.PrintFilesDir = mustExpand(cfg.PrintFilesDir)

	if len(raw.Slots) > 0 {
		cfg.Slots = normalizeSlots(raw.Slots)
	}

	return cfg, nil
}

// normalizeSlots fills display fallbacks for sparsely defined slots.
func normalizeSlots(slots []Slot) []Slot {
	out := make([]Slot, 0, len(slots))
	for i, slot := range slots {
		slot.ID = strings.TrimSpace(slot.ID)
		if slot.ID == "" {
			slot.ID = fmt.Sprintf("%d", i+1)
		}
		slot.Name = strings.TrimSpace(slot.Name)
		if slot.Name == "" {
			slot.Name = "Slot " + slot.ID
		}
		slot.Color = strings.TrimSpace(slot.Color)
		if slot.Color == "" {
			slot.Color = "#FFFFFF"
		}
		out = append(out, slot)
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
