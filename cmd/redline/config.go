package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/tsawler/redline/model"
)

// fileConfig is the optional YAML configuration file schema. Values left
// unset keep their defaults; flags given on the command line win over the
// file.
type fileConfig struct {
	Threshold *float64 `yaml:"threshold"`
	MinLength *int     `yaml:"minLength"`
	ChunkSize *int     `yaml:"chunkSize"`
	Enhanced  *bool    `yaml:"enhanced"`
	Fuzzy     *bool    `yaml:"fuzzy"`

	Report struct {
		PDF  string `yaml:"pdf"`
		HTML string `yaml:"html"`
	} `yaml:"report"`

	OverlayDir string `yaml:"overlayDir"`
}

// loadFileConfig reads and parses the YAML config at path.
func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// apply folds the file values into cfg, honoring only the fields present in
// the file.
func (fc *fileConfig) apply(cfg *model.Config, fuzzy *bool) {
	if fc.Threshold != nil {
		cfg.ExactMatchThreshold = *fc.Threshold
	}
	if fc.MinLength != nil {
		cfg.MinMeaningfulTextLength = *fc.MinLength
	}
	if fc.ChunkSize != nil {
		cfg.FuzzyChunkSize = *fc.ChunkSize
	}
	if fc.Enhanced != nil {
		cfg.EnhancedPreprocessing = *fc.Enhanced
	}
	if fc.Fuzzy != nil {
		*fuzzy = *fc.Fuzzy
	}
}
