package settings

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/kjkrol/cubic/pkg/gfx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

const DefaultPath = "settings.toml"

// Settings is read once at startup and never modified afterwards.
// ClearColor is written as "#rrggbb" or "#rrggbbaa". EventsPerPump caps the
// events handled per wake of the event loop, 0 drains all of them.
type Settings struct {
	Title         string `toml:"title"`
	Width         uint32 `toml:"width"`
	Height        uint32 `toml:"height"`
	VSync         bool   `toml:"vsync"`
	LogLevel      string `toml:"log_level"`
	ClearColor    Color  `toml:"clear_color"`
	EventsPerPump int    `toml:"events_per_pump"`
}

func Default() Settings {
	return Settings{
		Title:      "untitled",
		Width:      1280,
		Height:     720,
		VSync:      true,
		LogLevel:   "info",
		ClearColor: Color{RGBA: color.RGBA{A: 0xff}},
	}
}

// Load reads a TOML settings file. Keys missing from the file keep their
// defaults and unknown keys are ignored; an unreadable file, malformed TOML
// or a value of the wrong type is an error.
func Load(path string) (Settings, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings path %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

func (s Settings) WindowConfig() gfx.WindowConfig {
	return gfx.WindowConfig{
		Width:  int(s.Width),
		Height: int(s.Height),
		Title:  s.Title,
		VSync:  s.VSync,
	}
}

func (s Settings) RendererConfig() gfx.RendererConfig {
	return gfx.RendererConfig{ClearColor: s.ClearColor.RGBA}
}

func (s Settings) EventStrategy() gfx.EventsConsumerStrategy {
	if s.EventsPerPump <= 0 {
		return gfx.DrainAll()
	}
	return gfx.DrainMax(s.EventsPerPump)
}

type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalText(text []byte) error {
	hex, ok := strings.CutPrefix(string(text), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", text)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("color %q: %w", text, err)
	}
	c.RGBA = color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}
