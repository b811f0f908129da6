package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds settings loaded from pedigree.yml.
type ProjectConfig struct {
	DefaultFile    string `yaml:"defaultFile,omitempty"`
	MCPAddr        string `yaml:"mcpAddr,omitempty"`
	MaxGenerations int    `yaml:"maxGenerations,omitempty"`
	Verbose        bool   `yaml:"verbose,omitempty"`
}

// Load attempts to read pedigree.yml or pedigree.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"pedigree.yml", "pedigree.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
