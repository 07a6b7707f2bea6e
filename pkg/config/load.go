package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/permtrace/pkg/errors"
	"github.com/matzehuels/permtrace/pkg/playback"
)

const (
	appName  = "permtrace"
	fileName = "config.toml"

	// Environment variables that override file settings.
	EnvConfig      = "PERMTRACE_CONFIG"
	EnvInterval    = "PERMTRACE_INTERVAL"
	EnvCountMode   = "PERMTRACE_COUNT_MODE"
	EnvMaxInputLen = "PERMTRACE_MAX_INPUT_LEN"
	EnvColor       = "PERMTRACE_COLOR"
)

// Path returns the config file location using the XDG standard
// (~/.config/permtrace/config.toml). PERMTRACE_CONFIG takes precedence.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration.
//
// If path is empty the default [Path] is used and a missing file yields
// [DefaultConfig]. An explicit path that does not exist is an error.
// Environment overrides are applied after the file, then the result is
// validated.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "resolve config path")
		}
		path = p
		explicit = os.Getenv(EnvConfig) != ""
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "stat %s", path)
		}
		if explicit {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file %s does not exist", path)
		}
	} else {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML data on top of [DefaultConfig] without consulting the
// environment.
func Decode(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create config dir")
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// Encode returns cfg as TOML text.
func Encode(cfg *Config) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return buf.String(), nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", EnvInterval)
		}
		cfg.Playback.Interval = Duration(d)
	}
	if v := os.Getenv(EnvCountMode); v != "" {
		cfg.Display.CountMode = playback.CountMode(v)
	}
	if v := os.Getenv(EnvMaxInputLen); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", EnvMaxInputLen)
		}
		cfg.Limits.MaxInputLen = n
	}
	if v := os.Getenv(EnvColor); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", EnvColor)
		}
		cfg.Display.Color = b
	}
	return nil
}
