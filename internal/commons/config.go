package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"ordersvc/internal/config"
)

// LoadConfig reads a YAML config file on top of the env-driven defaults.
// Used by deployments that mount a config file instead of exporting vars.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
