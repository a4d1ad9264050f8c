package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Settings are the user-tunable knobs read from settings.yaml.
type Settings struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	FrameRate    int    `yaml:"frame_rate"`
	Seed         uint64 `yaml:"seed"`

	Background string `yaml:"background"`
	Particle   string `yaml:"particle"`
	Accent     string `yaml:"accent"`

	Sound  bool    `yaml:"sound"`
	Volume float64 `yaml:"volume"`

	PrefsPath string `yaml:"prefs_path"`
	SitePath  string `yaml:"site_path"`
	Watch     bool   `yaml:"watch"`
}

// Theme is the parsed colour palette.
type Theme struct {
	Background color.Color
	Particle   colorful.Color
	Accent     colorful.Color
}

func Default() *Settings {
	return &Settings{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		FrameRate:    60,
		Background:   "#0a0e1a",
		Particle:     "#ffffff",
		Accent:       "#64ffda",
		Volume:       -1.5,
		Watch:        true,
	}
}

func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "portfolio"), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}

// Load reads settings from path. A missing file yields defaults and is created;
// a malformed file yields defaults. Out of range values are reset individually.
func Load(path string, log *zap.Logger) (*Settings, error) {
	defaults := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("creating default settings file", zap.String("path", path))
			if err := defaults.Save(path); err != nil {
				log.Warn("failed to create default settings file", zap.Error(err))
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		log.Warn("invalid settings file, using defaults", zap.Error(err))
		return defaults, nil
	}
	known := knownKeys(Settings{})
	for key := range raw {
		if !known[key] {
			log.Warn("unrecognised setting key", zap.String("key", key))
		}
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		log.Warn("invalid settings file, using defaults", zap.Error(err))
		return defaults, nil
	}
	settings.validate(defaults, log)
	return settings, nil
}

func (s *Settings) validate(defaults *Settings, log *zap.Logger) {
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		log.Warn("invalid window size, using default",
			zap.Int("width", s.WindowWidth), zap.Int("height", s.WindowHeight))
		s.WindowWidth, s.WindowHeight = defaults.WindowWidth, defaults.WindowHeight
	}
	if s.FrameRate < 1 || s.FrameRate > 240 {
		log.Warn("invalid frame_rate, must be between 1 and 240", zap.Int("frame_rate", s.FrameRate))
		s.FrameRate = defaults.FrameRate
	}
	for _, field := range []*string{&s.Background, &s.Particle, &s.Accent} {
		if _, err := colorful.Hex(*field); err != nil {
			log.Warn("invalid colour, using default", zap.String("value", *field))
			*field = ""
		}
	}
	if s.Background == "" {
		s.Background = defaults.Background
	}
	if s.Particle == "" {
		s.Particle = defaults.Particle
	}
	if s.Accent == "" {
		s.Accent = defaults.Accent
	}
	if s.Volume > 0 || s.Volume < -10 {
		log.Warn("invalid volume, must be between -10 and 0", zap.Float64("volume", s.Volume))
		s.Volume = defaults.Volume
	}
}

func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Theme parses the colour strings. Invalid entries fall back to the defaults.
func (s *Settings) Theme() Theme {
	parse := func(v, fallback string) colorful.Color {
		c, err := colorful.Hex(v)
		if err != nil {
			c, _ = colorful.Hex(fallback)
		}
		return c
	}
	d := Default()
	return Theme{
		Background: parse(s.Background, d.Background),
		Particle:   parse(s.Particle, d.Particle),
		Accent:     parse(s.Accent, d.Accent),
	}
}

func knownKeys(v any) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("yaml"); tag != "" {
			name := strings.Split(tag, ",")[0]
			if name != "-" {
				keys[name] = true
			}
		}
	}
	return keys
}
