package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/domify-dev/domify/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "domify.json"

	// DefaultPort is the default conversion service port.
	DefaultPort = 3000

	// DefaultHost is the default conversion service host.
	DefaultHost = "localhost"

	// DefaultMaxDepth is the default conversion depth limit.
	DefaultMaxDepth = 512
)

// Config represents the complete domify.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Registry maps lowercase tag names to component names.
	Registry map[string]string `json:"registry,omitempty"`

	// Props configures the reference props mapper.
	Props PropsConfig `json:"props,omitempty"`

	// MaxDepth bounds conversion recursion. Zero means the default;
	// a negative value disables the guard.
	MaxDepth int `json:"maxDepth,omitempty"`

	// Server contains conversion service settings.
	Server ServerConfig `json:"server,omitempty"`

	// Watch is a markup file the serve command re-converts and pushes to
	// preview clients on change.
	Watch string `json:"watch,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PropsConfig configures attribute → prop renaming.
type PropsConfig struct {
	// ComponentAliases overrides renaming for component-backed elements.
	ComponentAliases map[string]string `json:"componentAliases,omitempty"`

	// IntrinsicAliases overrides renaming for intrinsic elements.
	IntrinsicAliases map[string]string `json:"intrinsicAliases,omitempty"`
}

// ServerConfig contains conversion service settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		MaxDepth: DefaultMaxDepth,
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("C001").WithDetailf("tried %s", path).Wrap(err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C002").Wrap(err)
	}
	cfg.configPath = path

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Find locates domify.json starting at dir and walking upward, then loads
// it. Returns the defaults when no file exists anywhere up the tree.
func Find(dir string) (*Config, error) {
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Path returns where the configuration was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) validate() error {
	for tag, component := range c.Registry {
		if strings.TrimSpace(component) == "" {
			return errors.New("C003").WithDetailf("tag %q has no component name", tag)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}

	// Registry keys are matched lowercase.
	if len(c.Registry) > 0 {
		normalized := make(map[string]string, len(c.Registry))
		for tag, component := range c.Registry {
			normalized[strings.ToLower(tag)] = component
		}
		c.Registry = normalized
	}
}

// EffectiveMaxDepth translates the config value into the converter option:
// negative disables the guard.
func (c *Config) EffectiveMaxDepth() int {
	if c.MaxDepth < 0 {
		return 0
	}
	return c.MaxDepth
}
