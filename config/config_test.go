package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	if cfg.Window.Title != "Chat" || cfg.Window.Width != 400 || cfg.Window.Height != 720 {
		t.Errorf("unexpected window %+v", cfg.Window)
	}
	if cfg.Theme != "light" || cfg.Profile != "none" {
		t.Errorf("unexpected theme %q or profile %q", cfg.Theme, cfg.Profile)
	}
	if cfg.Log.Level != "info" || !cfg.Log.Pretty {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	want := Swipe{Threshold: 80, IconTravel: 50, Damping: 20, Stiffness: 300}
	if cfg.Swipe != want {
		t.Errorf("expected swipe %+v, got %+v", want, cfg.Swipe)
	}
	if cfg.Reply.Height != 60 || cfg.Reply.Duration != 300*time.Millisecond {
		t.Errorf("unexpected reply %+v", cfg.Reply)
	}
	if cfg.Seed.File != "" || cfg.Seed.Filler != 0 || cfg.Debug.Outline {
		t.Errorf("unexpected seed %+v or debug %+v", cfg.Seed, cfg.Debug)
	}
}

func TestFlags(t *testing.T) {
	cfg, err := Load([]string{
		"--theme", "dark",
		"--threshold", "120",
		"--filler=25",
		"--outline",
		"--log-level", "debug",
	})
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if cfg.Theme != "dark" || cfg.Swipe.Threshold != 120 || cfg.Seed.Filler != 25 || !cfg.Debug.Outline {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("SWIPECHAT_THEME", "dark")
	t.Setenv("SWIPECHAT_SWIPE_ICON_TRAVEL", "30")
	t.Setenv("SWIPECHAT_REPLY_DURATION", "1s")
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if cfg.Theme != "dark" || cfg.Swipe.IconTravel != 30 || cfg.Reply.Duration != time.Second {
		t.Errorf("environment not applied: %+v", cfg)
	}
	cfg, err = Load([]string{"--theme", "light"})
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("flags should take precedence over the environment")
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
window:
  title: Support
theme: dark
swipe:
  threshold: 100
reply:
  duration: 150ms
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if cfg.Window.Title != "Support" || cfg.Theme != "dark" || cfg.Swipe.Threshold != 100 {
		t.Errorf("file not applied: %+v", cfg)
	}
	if cfg.Reply.Duration != 150*time.Millisecond {
		t.Errorf("expected 150ms, got %v", cfg.Reply.Duration)
	}
	if cfg.Swipe.Damping != 20 {
		t.Errorf("expected defaults for keys missing from the file")
	}
}

func TestMissingExplicitFile(t *testing.T) {
	if _, err := Load([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestValidation(t *testing.T) {
	for _, args := range [][]string{
		{"--theme", "purple"},
		{"--threshold", "5"},
		{"--filler", "-1"},
		{"--filler", "5000"},
		{"--width", "10"},
		{"--profile", "heap"},
		{"--log-level", "verbose"},
	} {
		if _, err := Load(args); err == nil {
			t.Errorf("%v: expected a validation error", args)
		}
	}
}

func TestHelp(t *testing.T) {
	if _, err := Load([]string{"--help"}); !errors.Is(err, pflag.ErrHelp) {
		t.Errorf("expected ErrHelp, got %v", err)
	}
	usage := Usage()
	for _, flag := range []string{"--config", "--threshold", "--seed", "--profile"} {
		if !strings.Contains(usage, flag) {
			t.Errorf("expected usage to mention %s:\n%s", flag, usage)
		}
	}
}
