// config_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"
)

// clearVar unsets key for the duration of the test, restoring any prior
// value afterwards.
func clearVar(t *testing.T, key string) {
	t.Helper()
	if v, ok := os.LookupEnv(key); ok {
		t.Setenv(key, v)
		os.Unsetenv(key)
	}
}

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearVar(t, "TERMCALC_PROMPT")
	clearVar(t, "TERMCALC_HISTORY")
	clearVar(t, "TERMCALC_COLOR")
	return home
}

func Test_Config_Defaults(t *testing.T) {
	home := isolateEnv(t)

	cfg := loadConfig()
	if cfg.Prompt != "> " {
		t.Fatalf("prompt = %q, want %q", cfg.Prompt, "> ")
	}
	if want := filepath.Join(home, ".termcalc_history"); cfg.History != want {
		t.Fatalf("history = %q, want %q", cfg.History, want)
	}
	if !cfg.Color {
		t.Fatal("color = false, want true by default")
	}
}

func Test_Config_EnvOverrides(t *testing.T) {
	home := isolateEnv(t)
	t.Setenv("TERMCALC_PROMPT", "calc> ")
	t.Setenv("TERMCALC_COLOR", "false")

	cfg := loadConfig()
	if cfg.Prompt != "calc> " {
		t.Fatalf("prompt = %q, want %q", cfg.Prompt, "calc> ")
	}
	if cfg.Color {
		t.Fatal("color = true, want false from TERMCALC_COLOR")
	}
	// Untouched keys keep their defaults.
	if want := filepath.Join(home, ".termcalc_history"); cfg.History != want {
		t.Fatalf("history = %q, want %q", cfg.History, want)
	}
}

func Test_Config_FileOverrides(t *testing.T) {
	home := isolateEnv(t)
	toml := "prompt = \"toml> \"\ncolor = false\n"
	if err := os.WriteFile(filepath.Join(home, ".termcalc.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfig()
	if cfg.Prompt != "toml> " {
		t.Fatalf("prompt = %q, want %q", cfg.Prompt, "toml> ")
	}
	if cfg.Color {
		t.Fatal("color = true, want false from config file")
	}
}

func Test_Config_EnvBeatsFile(t *testing.T) {
	home := isolateEnv(t)
	toml := "prompt = \"toml> \"\ncolor = false\n"
	if err := os.WriteFile(filepath.Join(home, ".termcalc.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TERMCALC_PROMPT", "env> ")

	cfg := loadConfig()
	if cfg.Prompt != "env> " {
		t.Fatalf("prompt = %q, want %q", cfg.Prompt, "env> ")
	}
	if cfg.Color {
		t.Fatal("color = true, want false from config file")
	}
}

// A config file that fails to parse is reported and otherwise ignored.
func Test_Config_BadFileFallsBack(t *testing.T) {
	home := isolateEnv(t)
	if err := os.WriteFile(filepath.Join(home, ".termcalc.toml"), []byte("{{nonsense"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfig()
	if cfg.Prompt != "> " {
		t.Fatalf("prompt = %q, want default", cfg.Prompt)
	}
	if !cfg.Color {
		t.Fatal("color = false, want default true")
	}
}
