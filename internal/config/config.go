package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the user editable settings stored in config.toml.
type Config struct {
	Binary     string  `toml:"binary"`
	ConfigRoot string  `toml:"config_root"`
	LogDir     string  `toml:"log_dir"`
	RomsDir    string  `toml:"roms_dir"`
	LibDir     string  `toml:"lib_dir"`
	Options    Options `toml:"options"`
}

const (
	defaultBinary     = "gzdoom"
	defaultConfigRoot = "/userdata/system/configs"
	defaultLogDir     = "/userdata/system/logs"
	defaultRomsDir    = "/userdata/roms/gzdoom"
	defaultLibDir     = "/usr/lib"
)

var (
	// ErrMissingConfigRoot indicates the config omitted config_root.
	ErrMissingConfigRoot = errors.New("config.config_root must be set")
	// ErrMissingBinary indicates the config omitted the emulator binary.
	ErrMissingBinary = errors.New("config.binary must be set")
	// ErrInvalidOption indicates an option override could not be parsed.
	ErrInvalidOption = errors.New("option must be of the form key=value")
)

// Default returns the baseline configuration for a Batocera-style layout.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Binary == "" {
		c.Binary = defaultBinary
	}
	if c.ConfigRoot == "" {
		c.ConfigRoot = defaultConfigRoot
	}
	if c.LogDir == "" {
		c.LogDir = defaultLogDir
	}
	if c.RomsDir == "" {
		c.RomsDir = defaultRomsDir
	}
	if c.LibDir == "" {
		c.LibDir = defaultLibDir
	}
	if c.Options == nil {
		c.Options = Options{}
	}
}

// Validate ensures the configuration can drive generation.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ConfigRoot) == "" {
		return ErrMissingConfigRoot
	}
	if strings.TrimSpace(c.Binary) == "" {
		return ErrMissingBinary
	}
	return nil
}

// DefaultPath reports where config.toml lives when no path is given.
func DefaultPath() (string, error) {
	if path := os.Getenv("GZLAUNCH_CONFIG"); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gzlaunch", "config.toml"), nil
}

// Load reads configuration from disk. Missing files return a default config.
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

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}
