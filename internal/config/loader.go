package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	pkgconfig "github.com/goran-ethernal/ShadowLogs/pkg/config"
	"gopkg.in/yaml.v3"
)

type decodeFunc func(data []byte, v any) error

type format struct {
	name   string
	decode decodeFunc
}

var (
	yamlFormat = format{name: "YAML", decode: yaml.Unmarshal}
	jsonFormat = format{name: "JSON", decode: json.Unmarshal}
	tomlFormat = format{name: "TOML", decode: toml.Unmarshal}

	formatsByExt = map[string]format{
		".yaml": yamlFormat,
		".yml":  yamlFormat,
		".json": jsonFormat,
		".toml": tomlFormat,
	}
)

// LoadFromFile loads configuration from a file, auto-detecting the format by extension.
// Supported formats: .yaml, .yml, .json, .toml
func LoadFromFile(path string) (*pkgconfig.Config, error) {
	ext := strings.ToLower(filepath.Ext(path))

	f, ok := formatsByExt[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml, .json, .toml)", ext)
	}

	return load(path, f)
}

// LoadFromYAML loads configuration from a YAML file.
func LoadFromYAML(path string) (*pkgconfig.Config, error) {
	return load(path, yamlFormat)
}

// LoadFromJSON loads configuration from a JSON file.
func LoadFromJSON(path string) (*pkgconfig.Config, error) {
	return load(path, jsonFormat)
}

// LoadFromTOML loads configuration from a TOML file.
func LoadFromTOML(path string) (*pkgconfig.Config, error) {
	return load(path, tomlFormat)
}

// load decodes the file, applies defaults and validates the result.
func load(path string, f format) (*pkgconfig.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg pkgconfig.Config
	if err := f.decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", f.name, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
