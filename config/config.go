// Package config reads the optional mage2-ls.toml at the workspace root.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
)

const FileName = "mage2-ls.toml"

type Config struct {
	// Paths are extra roots to scan for modules, absolute or relative to the
	// workspace root.
	Paths []string `toml:"paths" validate:"omitempty,dive,required"`
	// Ignore holds glob patterns (slash-separated, relative to each scanned
	// root) excluded from module discovery.
	Ignore []string `toml:"ignore" validate:"omitempty,dive,required"`
	// PhpExtension overrides the class-file extension, ".php" by default.
	PhpExtension string `toml:"php_extension" validate:"omitempty,startswith=."`
}

// Load reads the workspace config. A missing file yields the zero config.
func Load(root string) (Config, error) {
	content, err := os.ReadFile(filepath.Join(root, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	return Parse(string(content))
}

func Parse(content string) (Config, error) {
	var c Config
	if _, err := toml.Decode(content, &c); err != nil {
		return c, err
	}
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return c, err
	}
	return c, nil
}

// CompileIgnore compiles the ignore patterns for use during scanning.
func (c Config) CompileIgnore() ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(c.Ignore))
	for _, pattern := range c.Ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
