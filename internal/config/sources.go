package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// SourceOverride adjusts how a single upstream API is reached. Zero values
// leave the built-in endpoint settings untouched.
type SourceOverride struct {
	BaseURL        string `json:"base_url,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
	Retries        int    `json:"retries,omitempty"`
}

// Sources maps an upstream name (cellosaurus, pubmed, pubtator, pubchem,
// entrez) to its override. Loaded from an optional YAML file so mirrors and
// test deployments can redirect individual APIs.
type Sources map[string]SourceOverride

func LoadSources(path string) (Sources, error) {
	if path == "" {
		return Sources{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}
	var sources Sources
	if err := yaml.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("parse sources file %s: %w", path, err)
	}
	return sources, nil
}
