package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/ini.v1"

	"github.com/mike-rambil/python-snake/game"
	"github.com/mike-rambil/python-snake/screen"
)

const configFileName = "snake.ini"

// Settings is the on-disk configuration.
type Settings struct {
	Theme struct {
		SnakeColor  string `ini:"SnakeColor"`
		FoodColor   string `ini:"FoodColor"`
		TextColor   string `ini:"TextColor"`
		BorderColor string `ini:"BorderColor"`
		HeadGlyph   string `ini:"HeadGlyph"`
		BodyGlyph   string `ini:"BodyGlyph"`
		FoodGlyph   string `ini:"FoodGlyph"`
	} `ini:"Theme"`
	Game struct {
		// Seed fixes the food sequence; 0 picks one from the clock.
		Seed uint64 `ini:"Seed"`
	} `ini:"Game"`
}

func defaultSettings() *Settings {
	s := &Settings{}
	s.Theme.SnakeColor = "green"
	s.Theme.FoodColor = "red"
	s.Theme.TextColor = "yellow"
	s.Theme.BorderColor = "default"
	s.Theme.HeadGlyph = "O"
	s.Theme.BodyGlyph = "o"
	s.Theme.FoodGlyph = "*"
	return s
}

// defaultConfigPath places snake.ini next to the executable.
func defaultConfigPath() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exePath), configFileName), nil
}

// loadSettings reads path over the defaults. A missing file is created with
// the defaults; failing to create it is not an error.
func loadSettings(path string) (*Settings, error) {
	cfg := defaultSettings()

	iniFile, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := saveSettings(path, cfg); err != nil {
				logger.Printf("could not write default config %s: %v", path, err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := iniFile.StrictMapTo(cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func saveSettings(path string, s *Settings) error {
	cfg := ini.Empty()
	if err := cfg.ReflectFrom(s); err != nil {
		return err
	}
	return cfg.SaveTo(path)
}

// theme resolves the configured colors. Unknown names fall back to the
// default for that role and are reported in warnings.
func (s *Settings) theme() (screen.Theme, []string) {
	th := screen.DefaultTheme()
	var warnings []string
	for _, f := range []struct {
		key  string
		name string
		dst  *tcell.Color
	}{
		{"SnakeColor", s.Theme.SnakeColor, &th.Snake},
		{"FoodColor", s.Theme.FoodColor, &th.Food},
		{"TextColor", s.Theme.TextColor, &th.Text},
		{"BorderColor", s.Theme.BorderColor, &th.Border},
	} {
		c, err := screen.ParseColor(f.name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", f.key, err))
			continue
		}
		*f.dst = c
	}
	return th, warnings
}

// glyphs returns the configured runes. Each value must be exactly one rune.
func (s *Settings) glyphs() (game.Glyphs, error) {
	var gl game.Glyphs
	for _, f := range []struct {
		key string
		val string
		dst *game.Glyph
	}{
		{"HeadGlyph", s.Theme.HeadGlyph, &gl.Head},
		{"BodyGlyph", s.Theme.BodyGlyph, &gl.Body},
		{"FoodGlyph", s.Theme.FoodGlyph, &gl.Food},
	} {
		if f.val == "" {
			continue
		}
		if utf8.RuneCountInString(f.val) != 1 {
			return gl, fmt.Errorf("%s must be a single character, got %q", f.key, f.val)
		}
		r, _ := utf8.DecodeRuneInString(f.val)
		*f.dst = game.Glyph(r)
	}
	return gl, nil
}
