// Package config resolves the GeoServer connection settings. Values are read
// once at startup and are immutable for the life of the process.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultURL      = "http://localhost:8080/geoserver"
	DefaultUser     = "admin"
	DefaultPassword = "geoserver"
)

// Config holds the GeoServer endpoint and credentials.
type Config struct {
	URL      string `yaml:"url"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Read resolves the configuration in increasing order of precedence:
// built-in defaults, then the optional YAML config file, then the
// GEOSERVER_URL, GEOSERVER_USER and GEOSERVER_PASSWORD environment variables.
//
// configFile may be empty, in which case the GEOSERVER_CONFIG environment
// variable is consulted. A missing file is only an error when it was
// requested explicitly.
func Read(configFile string) (Config, error) {
	cfg := Config{
		URL:      DefaultURL,
		User:     DefaultUser,
		Password: DefaultPassword,
	}

	if configFile == "" {
		configFile = os.Getenv("GEOSERVER_CONFIG")
	}
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", configFile, err)
		}
	}

	if v := os.Getenv("GEOSERVER_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("GEOSERVER_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("GEOSERVER_PASSWORD"); v != "" {
		cfg.Password = v
	}

	cfg.URL = strings.TrimRight(cfg.URL, "/")
	if err := validateURL(cfg.URL); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid GeoServer URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid GeoServer URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid GeoServer URL %q: missing host", rawURL)
	}
	return nil
}
