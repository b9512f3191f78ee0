package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"swizzy/internal/ui"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFind_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "Sources", "App")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeConfig(t, root, "")

	got, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find() = %q, %v, %v", got, ok, err)
	}
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a config file higher up (e.g. in $HOME) would change the result
	if cfg.Path != "" {
		t.Skipf("found ambient config at %s", cfg.Path)
	}
	if cfg.Linter.CommandLine() != "swiftlint lint --reporter json" || cfg.Linter.Name != "SwiftLint" {
		t.Errorf("linter = %+v", cfg.Linter)
	}
	if cfg.Color != ColorAuto || cfg.Spinner != ui.ModeAuto {
		t.Errorf("output = %q/%q", cfg.Color, cfg.Spinner)
	}
}

func TestLoadFile_Overrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[linter]
command = "/opt/bin/swiftlint"
args = ["lint", "--quiet", "--reporter", "json"]

[output]
color = "Never"
spinner = "off"
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Linter.Command != "/opt/bin/swiftlint" || cfg.Linter.Name != "swiftlint" {
		t.Errorf("linter = %+v", cfg.Linter)
	}
	if !slices.Equal(cfg.Linter.Args, []string{"lint", "--quiet", "--reporter", "json"}) {
		t.Errorf("args = %v", cfg.Linter.Args)
	}
	if cfg.Color != ColorNever || cfg.Spinner != ui.ModeOff {
		t.Errorf("output = %q/%q", cfg.Color, cfg.Spinner)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[linter]\nname = \"Lint\"\n")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Linter.Name != "Lint" || cfg.Linter.Command != "swiftlint" || len(cfg.Linter.Args) != 3 {
		t.Errorf("linter = %+v", cfg.Linter)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[linter\n", "failed to parse TOML"},
		{"empty command", "[linter]\ncommand = \" \"\n", "[linter].command must not be empty"},
		{"bad color", "[output]\ncolor = \"rainbow\"\n", "[output].color"},
		{"bad spinner", "[output]\nspinner = \"maybe\"\n", "[output].spinner"},
		{"unknown key", "[output]\ncolour = \"never\"\n", "unknown key \"output.colour\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestDefault_DoesNotAliasArgs(t *testing.T) {
	cfg := Default()
	cfg.Linter.Args[0] = "analyze"
	if Default().Linter.Args[0] != "lint" {
		t.Error("Default() must return a fresh args slice")
	}
}

func TestColorMode_Enabled(t *testing.T) {
	noColor := func(key string) string {
		if key == "NO_COLOR" {
			return "1"
		}
		return ""
	}
	empty := func(string) string { return "" }

	tests := []struct {
		mode   ColorMode
		tty    bool
		getenv func(string) string
		want   bool
	}{
		{ColorAuto, true, empty, true},
		{ColorAuto, false, empty, false},
		{ColorAuto, true, noColor, false},
		{ColorNever, false, empty, false},
		{ColorNever, true, empty, false},
		{ColorAuto, true, nil, true},
	}
	for _, tt := range tests {
		if got := tt.mode.Enabled(tt.tty, tt.getenv); got != tt.want {
			t.Errorf("%q.Enabled(tty=%v) = %v, want %v", tt.mode, tt.tty, got, tt.want)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "AUTO": ColorAuto, " never ": ColorNever} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("ParseColorMode(%q) = %q, %v", in, got, err)
		}
	}
	for _, in := range []string{"yes", "always"} {
		if _, err := ParseColorMode(in); err == nil {
			t.Errorf("ParseColorMode(%q): expected error", in)
		}
	}
}
