package model

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"threshold at one", func(c *Config) { c.ExactMatchThreshold = 1 }, false},
		{"threshold zero", func(c *Config) { c.ExactMatchThreshold = 0 }, true},
		{"threshold negative", func(c *Config) { c.ExactMatchThreshold = -0.5 }, true},
		{"threshold above one", func(c *Config) { c.ExactMatchThreshold = 1.01 }, true},
		{"min length zero", func(c *Config) { c.MinMeaningfulTextLength = 0 }, false},
		{"min length negative", func(c *Config) { c.MinMeaningfulTextLength = -1 }, true},
		{"chunk size one", func(c *Config) { c.FuzzyChunkSize = 1 }, false},
		{"chunk size zero", func(c *Config) { c.FuzzyChunkSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
