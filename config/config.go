package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Render  RenderConfig  `toml:"render"`
	Gesture GestureConfig `toml:"gesture"`
	Log     LogConfig     `toml:"log"`
	State   StateConfig   `toml:"state"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type RenderConfig struct {
	ClearColor [4]float32 `toml:"clear_color"`
	// Debug checks glGetError after every draw call.
	Debug bool `toml:"debug"`
}

type GestureConfig struct {
	// WheelZoomStep is the pinch factor produced by one scroll notch.
	WheelZoomStep float32 `toml:"wheel_zoom_step"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

type StateConfig struct {
	Path string `toml:"path"`
}

func NewConfig() *Config {
	c := &Config{}
	c.Reset()
	return c
}

func (cfg *Config) Reset() {
	cfg.Window = WindowConfig{Width: 720, Height: 1280, Title: "two triangles"}
	cfg.Render = RenderConfig{ClearColor: [4]float32{0, 0, 0, 1}}
	cfg.Gesture = GestureConfig{WheelZoomStep: 1.1}
	cfg.Log = LogConfig{Level: "info", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 7}
	cfg.State = StateConfig{}
}

func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Gesture.WheelZoomStep <= 1 {
		return fmt.Errorf("wheel_zoom_step must be greater than 1, got %v", cfg.Gesture.WheelZoomStep)
	}
	for _, c := range cfg.Render.ClearColor {
		if c < 0 || c > 1 {
			return fmt.Errorf("clear_color components must be in [0,1], got %v", cfg.Render.ClearColor)
		}
	}
	return nil
}

// Load reads a TOML file on top of the defaults. An empty path or a missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}
