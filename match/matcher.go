// Package match implements the greedy cross-page matcher: it partitions old
// and new content units into matched, removed and added sets and derives the
// aggregate similarity metrics for the comparison.
package match

import (
	"strings"

	"github.com/tsawler/redline/model"
)

// partialMatchFloor is the similarity above which a below-threshold best
// candidate is still recorded as a pair for statistical purposes. Such a
// pair never rescues the old unit from removal.
const partialMatchFloor = 0.7

// Matcher compares content units under a validated configuration.
type Matcher struct {
	cfg model.Config
}

// New creates a Matcher, rejecting an invalid configuration before any unit
// is processed.
func New(cfg model.Config) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{cfg: cfg}, nil
}

// Match runs a single greedy pass over the old units, in ascending order,
// against a working set of unmatched new units.
//
// For each old unit the working set is scanned in its current order. The
// first candidate whose similarity reaches the exact-match threshold wins
// immediately and is consumed; no later old unit may reclaim it. If no
// candidate qualifies, the old unit is classified removed. A strong partial
// match (best similarity above 0.7) is additionally recorded as a pair for
// the statistics, but the candidate stays available for later old units.
// Whatever remains unconsumed in the working set is classified added.
//
// Match is deterministic: identical inputs produce an identical result,
// including pair order. Empty input on either side is not an error.
func (m *Matcher) Match(oldUnits, newUnits []model.ContentUnit) model.ComparisonResult {
	var (
		removed []model.ContentUnit
		matched []model.MatchedPair
	)

	// Consumed new units are tombstoned rather than removed from the slice,
	// so the scan order of the survivors stays the original input order and
	// consumption is O(1).
	consumed := make([]bool, len(newUnits))

	for _, oldUnit := range oldUnits {
		var (
			found   bool
			bestSim float64
			bestIdx = -1
		)

		for j := range newUnits {
			if consumed[j] {
				continue
			}
			sim := Ratio(oldUnit.Normalized, newUnits[j].Normalized)
			if sim > bestSim {
				bestSim = sim
				bestIdx = j
			}
			// First qualifying candidate wins; the scan does not keep
			// looking for a globally better one.
			if sim >= m.cfg.ExactMatchThreshold {
				matched = append(matched, model.MatchedPair{
					Old:        oldUnit,
					New:        newUnits[j],
					Similarity: sim,
				})
				consumed[j] = true
				found = true
				break
			}
		}
		if found {
			continue
		}

		if bestIdx >= 0 && bestSim > partialMatchFloor {
			matched = append(matched, model.MatchedPair{
				Old:        oldUnit,
				New:        newUnits[bestIdx],
				Similarity: bestSim,
			})
		}
		removed = append(removed, oldUnit)
	}

	var added []model.ContentUnit
	for j := range newUnits {
		if !consumed[j] {
			added = append(added, newUnits[j])
		}
	}

	return model.ComparisonResult{
		Removed: removed,
		Added:   added,
		Matched: matched,
		Scores:  m.scores(oldUnits, newUnits, removed, matched),
	}
}

// scores derives the four aggregate metrics. Each metric defaults to exactly
// 0 when its denominator would be zero.
func (m *Matcher) scores(oldUnits, newUnits, removed []model.ContentUnit, matched []model.MatchedPair) model.SimilarityScores {
	var s model.SimilarityScores

	if len(matched) > 0 {
		var total float64
		for _, pair := range matched {
			total += pair.Similarity
		}
		s.AvgContentSimilarity = total / float64(len(matched)) * 100
	}

	if len(oldUnits) > 0 && len(newUnits) > 0 {
		if union := len(oldUnits) + len(newUnits) - len(matched); union > 0 {
			s.DocumentSimilarity = float64(len(matched)) / float64(union) * 100
		}
	}

	if len(oldUnits) > 0 {
		s.RetentionRate = float64(len(oldUnits)-len(removed)) / float64(len(oldUnits)) * 100
	}

	oldText := joinNormalized(oldUnits)
	newText := joinNormalized(newUnits)
	if oldText != "" || newText != "" {
		s.TextSimilarity = Ratio(oldText, newText) * 100
	}

	return s
}

// joinNormalized concatenates the normalized text of all units with single
// spaces, for the whole-document text similarity metric.
func joinNormalized(units []model.ContentUnit) string {
	parts := make([]string, len(units))
	for i, unit := range units {
		parts[i] = unit.Normalized
	}
	return strings.Join(parts, " ")
}
