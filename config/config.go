// Package config loads the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wally-yu/binance-dex/api"
)

const (
	// DirName is the directory under the user home holding the config,
	// the wallet vault and the session.
	DirName = ".bnbdex"
	// FileName of the config inside DirName.
	FileName = "config.yaml"

	defaultTimeout = 30 * time.Second
)

// LogConfig configures logging, FileName enables rotated file output.
type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	Console    bool   `yaml:"console"`
}

// Config is the CLI configuration.
type Config struct {
	Network string        `yaml:"network"`
	APIURL  string        `yaml:"api-url"`
	WSURL   string        `yaml:"ws-url"`
	NodeURL string        `yaml:"node-url"`
	ChainID string        `yaml:"chain-id"`
	Timeout time.Duration `yaml:"timeout"`
	Log     LogConfig     `yaml:"log"`
}

// Dir returns the configuration directory under the user home.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Default returns the mainnet configuration.
func Default() Config {
	cfg := Config{Network: api.NetworkMainnet}
	_ = cfg.applyDefaults()
	return cfg
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config file error: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config yaml error: %w", err)
	}
	if err := cfg.applyDefaults(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetNetwork switches the network and resets the endpoints to its defaults.
// The node URL belongs to the previous network and is cleared.
func (c *Config) SetNetwork(network string) error {
	if _, err := api.Params(network); err != nil {
		return err
	}
	c.Network = network
	c.APIURL, c.WSURL, c.ChainID, c.NodeURL = "", "", "", ""
	return c.applyDefaults()
}

// Params returns the chain parameters of the configured network with the
// endpoints overridden by the config.
func (c Config) Params() (api.NetworkParams, error) {
	p, err := api.Params(c.Network)
	if err != nil {
		return api.NetworkParams{}, err
	}
	p.APIURL, p.WSURL, p.ChainID = c.APIURL, c.WSURL, c.ChainID
	return p, nil
}

func (c *Config) applyDefaults() error {
	if c.Network == "" {
		c.Network = api.NetworkMainnet
	}
	p, err := api.Params(c.Network)
	if err != nil {
		return err
	}
	if c.APIURL == "" {
		c.APIURL = p.APIURL
	}
	if c.WSURL == "" {
		c.WSURL = p.WSURL
	}
	if c.ChainID == "" {
		c.ChainID = p.ChainID
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	return nil
}

// Save writes the config to path, creating the directory if needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
