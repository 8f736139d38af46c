package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr    string `json:"addr" yaml:"addr" toml:"addr"`
	DataDir string `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	// Compute device override: "auto" (default), "cpu" or "cuda".
	Device string `json:"device" yaml:"device" toml:"device"`
	// Catalog index of the model loaded on first use. Nil means registry default.
	DefaultModelIndex *int `json:"default_model_index" yaml:"default_model_index" toml:"default_model_index"`
	// External tool paths.
	BPETool     string `json:"bpe_tool" yaml:"bpe_tool" toml:"bpe_tool"`
	SPMTool     string `json:"spm_tool" yaml:"spm_tool" toml:"spm_tool"`
	ConvertTool string `json:"convert_tool" yaml:"convert_tool" toml:"convert_tool"`
	// Inference runner binary; empty disables real inference.
	EngineRunner string `json:"engine_runner" yaml:"engine_runner" toml:"engine_runner"`
	// HTTP layer knobs.
	TranslateTimeoutSec int64 `json:"translate_timeout_sec" yaml:"translate_timeout_sec" toml:"translate_timeout_sec"`
	MaxBodyBytes        int64 `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	// CORS (opt-in).
	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
	CORSAllowedMethods []string `json:"cors_allowed_methods" yaml:"cors_allowed_methods" toml:"cors_allowed_methods"`
	CORSAllowedHeaders []string `json:"cors_allowed_headers" yaml:"cors_allowed_headers" toml:"cors_allowed_headers"`
	// Logging level: debug|info|warn|error.
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
