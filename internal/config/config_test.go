package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", c.BaseURL, DefaultBaseURL)
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", c.LogLevel, "info")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := Config{BaseURL: "https://staging.craftlink.app", LogLevel: "debug"}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "adminctl", "config.json"))
	if err != nil {
		t.Fatalf("stat config file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config file mode = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name string
		env  string
		cfg  Config
		want string
	}{
		{
			name: "env overrides config",
			env:  "http://localhost:3000/",
			cfg:  Config{BaseURL: "https://api.craftlink.app"},
			want: "http://localhost:3000",
		},
		{
			name: "config used when env empty",
			env:  "",
			cfg:  Config{BaseURL: "https://api.craftlink.app/"},
			want: "https://api.craftlink.app",
		},
		{
			name: "whitespace env ignored",
			env:  "   ",
			cfg:  Config{BaseURL: "https://api.craftlink.app"},
			want: "https://api.craftlink.app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvBaseURL, tt.env)
			if got := ResolveBaseURL(tt.cfg); got != tt.want {
				t.Errorf("ResolveBaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
