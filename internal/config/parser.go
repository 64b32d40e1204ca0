package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	cosmicerrors "github.com/alexisbeaulieu97/cosmicui/pkg/errors"
)

//go:embed default.yaml
var defaultSite []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a site file from disk, applies defaults, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cosmicerrors.NewParseError(path, 0, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes decodes a site document held in memory. name is used in error messages.
func ParseBytes(data []byte, name string) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, cosmicerrors.NewParseError(name, extractLine(err), err)
	}

	cfg.ApplyDefaults()

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in CosmicUI site.
func Default() *Config {
	cfg, err := ParseBytes(defaultSite, "default.yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded default site is invalid: %v", err))
	}
	return cfg
}

// Load parses path, or returns the built-in site when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return ParseConfig(path)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
