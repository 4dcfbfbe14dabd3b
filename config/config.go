// Package config loads the header widget settings.
package config

import (
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/heathj/headerbar/delegate"
)

type MenuItem struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon"`
	Href string `yaml:"href"`
}

type Config struct {
	Handle   string     `yaml:"handle"`
	Boundary string     `yaml:"boundary"`
	Title    string     `yaml:"title"`
	URL      string     `yaml:"url"`
	Username string     `yaml:"username"`
	Image    string     `yaml:"image"`
	Page     string     `yaml:"page"`
	Menu     []MenuItem `yaml:"menu"`
	LogLevel string     `yaml:"log_level"`
}

// Default returns a config with every optional field filled.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Handle == "" {
		c.Handle = delegate.DefaultAttribute
	}
	if c.Boundary == "" {
		c.Boundary = delegate.DefaultBoundary
	}
	if c.URL == "" {
		c.URL = "/"
	}
	if c.LogLevel == "" {
		c.LogLevel = logrus.InfoLevel.String()
	}
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Handle) == "" || strings.ContainsAny(c.Handle, " \t\n=\"'<>") {
		return errors.Errorf("invalid handle attribute %q", c.Handle)
	}
	for i, item := range c.Menu {
		if strings.TrimSpace(item.Text) == "" {
			return errors.Errorf("menu item %d has no text", i)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// FromEnv overlays HEADER_TITLE, HEADER_URL, HEADER_USERNAME, HEADER_PAGE
// and LOG_LEVEL, reading a .env file in the working directory first if
// there is one. A .env that exists but cannot be read is logged and skipped.
func (c *Config) FromEnv() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("ignoring .env")
	}

	if v := os.Getenv("HEADER_TITLE"); v != "" {
		c.Title = v
	}
	if v := os.Getenv("HEADER_URL"); v != "" {
		c.URL = v
	}
	if v := os.Getenv("HEADER_USERNAME"); v != "" {
		c.Username = v
	}
	if v := os.Getenv("HEADER_PAGE"); v != "" {
		c.Page = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return c
}

// Level is the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
