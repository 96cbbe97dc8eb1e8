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

// Config holds runtime parameters for the bridge daemon.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr          string  `json:"addr" yaml:"addr" toml:"addr"`
	ModelPath     string  `json:"model_path" yaml:"model_path" toml:"model_path"`
	TokenizerPath string  `json:"tokenizer_path" yaml:"tokenizer_path" toml:"tokenizer_path"`
	Temperature   float64 `json:"temperature" yaml:"temperature" toml:"temperature"`
	SeqLen        int     `json:"seq_len" yaml:"seq_len" toml:"seq_len"`
	Threads       int     `json:"threads" yaml:"threads" toml:"threads"`
	ModelsDir     string  `json:"models_dir" yaml:"models_dir" toml:"models_dir"`
	LogLevel      string  `json:"log_level" yaml:"log_level" toml:"log_level"`
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
