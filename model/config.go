package model

import "fmt"

// Config holds the tunable parameters for one comparison run. A Config is
// treated as immutable once a run begins; Validate rejects out-of-range
// values before any unit is processed.
type Config struct {
	// ExactMatchThreshold is the similarity ratio at or above which two
	// content units are treated as the same content across versions.
	// Must be in (0, 1].
	ExactMatchThreshold float64

	// MinMeaningfulTextLength is the rune count a normalized fragment must
	// exceed to be considered meaningful. Must be >= 0.
	MinMeaningfulTextLength int

	// FuzzyChunkSize is the number of consecutive words in a fuzzy search
	// window. Must be >= 1.
	FuzzyChunkSize int

	// EnhancedPreprocessing selects the aggressive normalization mode:
	// lowercasing, character substitution and punctuation stripping on top
	// of whitespace collapsing.
	EnhancedPreprocessing bool
}

// DefaultConfig returns the standard comparison configuration.
func DefaultConfig() Config {
	return Config{
		ExactMatchThreshold:     0.92,
		MinMeaningfulTextLength: 13,
		FuzzyChunkSize:          5,
		EnhancedPreprocessing:   true,
	}
}

// Validate checks the configuration and returns a descriptive error for the
// first out-of-range value found.
func (c Config) Validate() error {
	if c.ExactMatchThreshold <= 0 || c.ExactMatchThreshold > 1 {
		return fmt.Errorf("exact match threshold must be in (0, 1], got %g", c.ExactMatchThreshold)
	}
	if c.MinMeaningfulTextLength < 0 {
		return fmt.Errorf("minimum meaningful text length must be >= 0, got %d", c.MinMeaningfulTextLength)
	}
	if c.FuzzyChunkSize < 1 {
		return fmt.Errorf("fuzzy chunk size must be >= 1, got %d", c.FuzzyChunkSize)
	}
	return nil
}
