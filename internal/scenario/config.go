package scenario

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the root of a YAML scenario document: a seed and a
// list of generation blocks.
type Config struct {
	// Version of the scenario schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Seed makes the whole run reproducible. Zero means a wall-clock seed.
	Seed uint64 `yaml:"seed,omitempty"`

	// Generate lists the blocks to execute, in order.
	Generate []Block `yaml:"generate"`
}

// Block asks for count instances of one registered prototype type, with
// optional per-field generator overrides.
type Block struct {
	// Type is a prototype name, e.g. "store.Customer".
	Type string `yaml:"type"`

	// Count of instances to generate. Defaults to 1.
	Count int `yaml:"count,omitempty"`

	// Fields maps field names to generator names from the catalog,
	// e.g. { "Note": "sentence" }.
	Fields map[string]string `yaml:"fields,omitempty"`
}

// Parse parses YAML data into a Config and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse scenario YAML")
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	for i := range cfg.Generate {
		if cfg.Generate[i].Count == 0 {
			cfg.Generate[i].Count = 1
		}
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal scenario")
	}

	return data, nil
}
