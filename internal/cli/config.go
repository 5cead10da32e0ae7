package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	deperrors "github.com/matzehuels/deptree/pkg/errors"
)

// Config holds defaults read from the TOML config file. Command-line flags
// take precedence over every field.
//
//	indent = 4
//	scopes = ["runtime"]
//	exclude = ["org.jetbrains.kotlin:*"]
//	all_scopes = true
type Config struct {
	// Indent is the number of spaces per depth level. Zero keeps the default.
	Indent    int      `toml:"indent"`
	Scopes    []string `toml:"scopes"`
	Exclude   []string `toml:"exclude"`
	AllScopes bool     `toml:"all_scopes"`
}

// configDir returns the config directory using XDG standard (~/.config/deptree/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the config at path. An empty path selects the default
// location, which may be absent; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, deperrors.Wrap(deperrors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, deperrors.New(deperrors.ErrCodeInvalidConfig, "load config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Indent < 0 {
		return Config{}, deperrors.New(deperrors.ErrCodeInvalidConfig, "load config %s: indent must not be negative", path)
	}
	return cfg, nil
}
