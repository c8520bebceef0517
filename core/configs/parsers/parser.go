// Package parsers reads benchmark configuration files from YAML. Values
// absent from the file keep their defaults; validation happens after the
// caller has applied any command line overrides.
package parsers

import (
	"os"

	"gopkg.in/yaml.v3"

	"latbench/core/configs"
)

// ParseClientConfig loads a client configuration file on top of the
// defaults.
func ParseClientConfig(filepath string) (*configs.ClientConfig, error) {
	content, err := os.ReadFile(filepath)

	if err != nil {
		return nil, err
	}

	config := configs.DefaultClientConfig()

	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, err
	}

	return config, nil
}

// ParseServerConfig loads a server configuration file on top of the
// defaults.
func ParseServerConfig(filepath string) (*configs.ServerConfig, error) {
	content, err := os.ReadFile(filepath)

	if err != nil {
		return nil, err
	}

	config := configs.DefaultServerConfig()

	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, err
	}

	return config, nil
}
