// Package config discovers and decodes .swizzy.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"swizzy/internal/source"
	"swizzy/internal/ui"
)

// FileName is the configuration file searched for from the working
// directory upwards.
const FileName = ".swizzy.toml"

// Config is the resolved configuration. The zero value is not useful; start
// from Default.
type Config struct {
	Path    string // empty when no file was found
	Linter  source.Linter
	Color   ColorMode
	Spinner ui.Mode
}

// Default returns the configuration used when no file is present.
func Default() Config {
	linter := source.DefaultLinter
	linter.Args = slices.Clone(linter.Args)
	return Config{
		Linter:  linter,
		Color:   ColorAuto,
		Spinner: ui.ModeAuto,
	}
}

type fileConfig struct {
	Linter linterConfig `toml:"linter"`
	Output outputConfig `toml:"output"`
}

type linterConfig struct {
	Name    string   `toml:"name"`
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

type outputConfig struct {
	Color   string `toml:"color"`
	Spinner string `toml:"spinner"`
}

// Find walks from startDir to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the nearest configuration file. Without one it
// returns Default().
func Load(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile decodes path on top of Default(). Keys that are not set keep
// their defaults; unknown keys are rejected.
func LoadFile(path string) (Config, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	cfg := Default()
	cfg.Path = path
	if meta.IsDefined("linter", "command") {
		command := strings.TrimSpace(fc.Linter.Command)
		if command == "" {
			return Config{}, fmt.Errorf("%s: [linter].command must not be empty", path)
		}
		cfg.Linter.Command = command
		// a custom command is named after itself unless [linter].name says otherwise
		cfg.Linter.Name = filepath.Base(command)
	}
	if meta.IsDefined("linter", "args") {
		cfg.Linter.Args = fc.Linter.Args
	}
	if meta.IsDefined("linter", "name") {
		cfg.Linter.Name = strings.TrimSpace(fc.Linter.Name)
	}
	if meta.IsDefined("output", "color") {
		mode, err := ParseColorMode(fc.Output.Color)
		if err != nil {
			return Config{}, fmt.Errorf("%s: [output].color: %w", path, err)
		}
		cfg.Color = mode
	}
	if meta.IsDefined("output", "spinner") {
		mode, err := ui.ParseMode(fc.Output.Spinner)
		if err != nil {
			return Config{}, fmt.Errorf("%s: [output].spinner: %w", path, err)
		}
		cfg.Spinner = mode
	}
	return cfg, nil
}
