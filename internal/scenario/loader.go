package scenario

import (
	"os"

	"github.com/cockroachdb/errors"
)

// LoadFile loads and parses a YAML scenario file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario file %s", path)
	}

	return Parse(data)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write scenario file %s", path)
	}

	return nil
}
