package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

// config carries the interactive-mode settings. Every field has a default;
// ~/.termcalc.toml overrides it and TERMCALC_* environment variables
// override both.
type config struct {
	Prompt  string `koanf:"prompt"`
	History string `koanf:"history"`
	Color   bool   `koanf:"color"`
}

func defaultConfig() config {
	home, _ := os.UserHomeDir()
	return config{
		Prompt:  "> ",
		History: filepath.Join(home, ".termcalc_history"),
		Color:   true,
	}
}

func loadConfig() config {
	def := defaultConfig()

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(map[string]interface{}{
		"prompt":  def.Prompt,
		"history": def.History,
		"color":   def.Color,
	}, "."), nil)

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".termcalc.toml")
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				fmt.Fprintf(os.Stderr, "%s: cannot load %s: %v\n", appName, path, err)
			}
		}
	}

	_ = k.Load(env.Provider("TERMCALC_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TERMCALC_"))
	}), nil)

	cfg := def
	if err := k.Unmarshal("", &cfg); err != nil {
		return def
	}
	return cfg
}
