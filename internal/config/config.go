package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/kmoran/logoticker/internal/ticker"
)

// Config captures the host-side settings for the ticker application.
type Config struct {
	// Accent, Speed and Direction seed the component's initial attributes.
	// Empty or unset values leave the component defaults in place.
	Accent    string
	Speed     float64
	Direction string

	// LogoPath points at a JSON logo data file. Empty means the built-in
	// fallback set is used and nothing is polled.
	LogoPath string

	ReducedMotion bool
	PollSeconds   int
}

const (
	defaultConfigPath  = "~/.config/logoticker/config.toml"
	defaultPollSeconds = 2
)

// Load locates and parses the config file, falling back to defaults when it
// is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{PollSeconds: defaultPollSeconds}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
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
		Accent        string  `toml:"accent"`
		Speed         float64 `toml:"speed"`
		Direction     string  `toml:"direction"`
		Logos         string  `toml:"logos"`
		ReducedMotion bool    `toml:"reduced_motion"`
		PollSeconds   int     `toml:"poll_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Accent = strings.TrimSpace(raw.Accent)
	cfg.Speed = raw.Speed
	cfg.Direction = strings.TrimSpace(raw.Direction)
	cfg.ReducedMotion = raw.ReducedMotion

	if logos := strings.TrimSpace(raw.Logos); logos != "" {
		cfg.LogoPath = mustExpand(logos)
	}
	if raw.PollSeconds > 0 {
		cfg.PollSeconds = raw.PollSeconds
	}

	return cfg, nil
}

// Attributes maps the configured values onto the component's initial
// attribute set. Only configured keys appear; the component applies its own
// documented defaults for absent ones.
func (c Config) Attributes() map[string]string {
	attrs := make(map[string]string)
	if c.Accent != "" {
		attrs[ticker.AttrAccent] = c.Accent
	}
	if c.Speed != 0 {
		attrs[ticker.AttrSpeed] = strconv.FormatFloat(c.Speed, 'f', -1, 64)
	}
	if c.Direction != "" {
		attrs[ticker.AttrDirection] = c.Direction
	}
	return attrs
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
