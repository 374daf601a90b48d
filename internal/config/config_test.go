package config

import (
	"errors"
	"log/slog"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.Viewer != "fyne" {
		t.Errorf("Viewer = %q, want fyne", cfg.Viewer)
	}
	if cfg.Renderer != "gonum" {
		t.Errorf("Renderer = %q, want gonum", cfg.Renderer)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		EnvViewer:   "None",
		EnvRenderer: "gochart",
		EnvWidth:    "1024",
		EnvHeight:   " 768 ",
		EnvLogLevel: "debug",
	}))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.Viewer != "none" || cfg.Renderer != "gochart" {
		t.Errorf("Viewer/Renderer = %q/%q, want none/gochart", cfg.Viewer, cfg.Renderer)
	}
	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("size = %dx%d, want 1024x768", cfg.Width, cfg.Height)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestFromEnvEmptyKeepsDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric width", map[string]string{EnvWidth: "wide"}},
		{"zero height", map[string]string{EnvHeight: "0"}},
		{"negative width", map[string]string{EnvWidth: "-5"}},
		{"unknown log level", map[string]string{EnvLogLevel: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(envMap(tt.env)); err == nil {
				t.Error("FromEnv() returned no error")
			}
		})
	}
}

func TestSuffixFromArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "no argument", args: nil, want: ""},
		{name: "one argument", args: []string{"7"}, want: "7"},
		{name: "argument used verbatim", args: []string{"_run 2"}, want: "_run 2"},
		{name: "two arguments", args: []string{"1", "2"}, wantErr: ErrUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SuffixFromArgs(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SuffixFromArgs(%q) error = %v, want %v", tt.args, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SuffixFromArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"", "data.txt"},
		{"2", "data2.txt"},
		{"7", "data7.txt"},
	}
	for _, tt := range tests {
		if got := FileName(tt.suffix); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
