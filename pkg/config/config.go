// Package config loads taglog's user configuration: the default output
// format and user-defined color aliases. Embedded defaults are always
// loaded first, then an optional taglog.toml from the user's config
// directory is layered on top.
package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/taglog/pkg/color"
	"github.com/arthur-debert/taglog/pkg/errors"
	"github.com/arthur-debert/taglog/pkg/logging"
)

// EnvConfigDir overrides the XDG config directory for taglog
const EnvConfigDir = "TAGLOG_CONFIG_DIR"

// ConfigFile is the name of the configuration file
const ConfigFile = "taglog.toml"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config represents taglog's configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	Colors ColorsConfig `toml:"colors"`
}

// OutputConfig controls how console entries are rendered
type OutputConfig struct {
	// Format is "auto", "term" or "text"
	Format string `toml:"format"`
	// Styles optionally points at a custom styles YAML file
	Styles string `toml:"styles"`
}

// ColorsConfig holds user palette customization
type ColorsConfig struct {
	// Aliases maps user names onto built-in palette entries,
	// e.g. danger = "red"
	Aliases map[string]string `toml:"aliases"`
}

// Dir returns the directory searched for taglog.toml.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, "taglog")
}

// Load returns the merged configuration: embedded defaults overlaid with
// the user's taglog.toml when one exists.
func Load() (*Config, error) {
	log := logging.GetLogger("config")

	var cfg Config
	if err := toml.Unmarshal(defaultConfig, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	path := filepath.Join(Dir(), ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("No user config file, using defaults")
			return &cfg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}

	log.Debug().Str("path", path).Msg("Loaded user config")
	return &cfg, nil
}

// Apply installs the configuration's side effects: color aliases become
// resolvable palette names.
func (c *Config) Apply() {
	if len(c.Colors.Aliases) > 0 {
		color.SetAliases(c.Colors.Aliases)
	}
}
