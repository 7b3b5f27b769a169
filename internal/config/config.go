package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the user editable launcher settings stored in
// config.toml under the prefix directory.
type Config struct {
	Version VersionBlock `toml:"version"`
	Display DisplayBlock `toml:"display"`
	DLL     DLLBlock     `toml:"dll"`
	Debug   DebugBlock   `toml:"debug"`
}

// VersionBlock selects the Windows and DOS versions reported to
// programs before any command-line override.
type VersionBlock struct {
	Windows string `toml:"windows"`
	DOS     string `toml:"dos"`
}

// DisplayBlock holds window management defaults.
type DisplayBlock struct {
	Managed bool `toml:"managed"`
}

// DLLBlock lists load order overrides applied before any --dll option.
type DLLBlock struct {
	Overrides []string `toml:"overrides"`
}

// DebugBlock holds the debug filter applied before any --debugmsg
// option.
type DebugBlock struct {
	Channels string `toml:"channels"`
}

// ErrDOSRequiresWin31 indicates a DOS version configured without the
// only Windows version that reports it.
var ErrDOSRequiresWin31 = errors.New("config.version.dos requires version.windows = \"win31\"")

// Default returns the baseline configuration. Empty fields defer to the
// built-in defaults of the subsystem they configure.
func Default() Config {
	return Config{}
}

func (c *Config) applyDefaults() {
	c.Version.Windows = strings.ToLower(strings.TrimSpace(c.Version.Windows))
	c.Version.DOS = strings.TrimSpace(c.Version.DOS)
	c.Debug.Channels = strings.TrimSpace(c.Debug.Channels)
}

// Validate ensures the configuration is internally consistent. Field
// values are checked by the subsystems that consume them.
func (c Config) Validate() error {
	if c.Version.DOS != "" && c.Version.Windows != "win31" {
		return ErrDOSRequiresWin31
	}
	return nil
}

// Path returns the configuration location: config.toml under
// WINEPREFIX, or under ~/.wine when the variable is unset.
func Path() (string, error) {
	if prefix := os.Getenv("WINEPREFIX"); prefix != "" {
		return filepath.Join(prefix, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wine", "config.toml"), nil
}

// Load reads configuration from disk. Missing files return the default
// config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
