// Package model defines the core data types shared across the comparison
// pipeline: content units and their classification results, similarity
// metrics, page geometry, and the per-run configuration.
//
// All types in this package are plain values. A comparison run creates its
// own instances, never mutates them after publication, and never shares them
// with another run.
package model
