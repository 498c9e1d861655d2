package model

// ContentUnit is a paragraph-granularity chunk of text extracted from one
// page of a document. Units are the atomic elements compared across document
// versions: the normalized text drives matching, while the original text is
// what gets located and marked on the page.
type ContentUnit struct {
	// Normalized is the canonical comparison form produced by the normalize
	// package. It is always longer (in runes) than the configured minimum
	// meaningful text length.
	Normalized string

	// Page is the 0-indexed page the unit was extracted from.
	Page int

	// Original is the paragraph text exactly as it appeared on the page.
	Original string
}

// MatchedPair records that an old unit and a new unit were judged to be the
// same (or nearly the same) content, with the similarity ratio that judgment
// was based on.
type MatchedPair struct {
	Old        ContentUnit
	New        ContentUnit
	Similarity float64 // in [0, 1]
}

// SimilarityScores aggregates the four document-level similarity metrics.
// Each value is a percentage; a metric whose denominator would be zero is
// reported as exactly 0.
type SimilarityScores struct {
	// AvgContentSimilarity is the mean similarity across all matched pairs,
	// including partial matches recorded for statistical purposes.
	AvgContentSimilarity float64

	// DocumentSimilarity is the Jaccard-style ratio of matched content to
	// the union of old and new content.
	DocumentSimilarity float64

	// RetentionRate is the percentage of old-document units that were not
	// classified as removed.
	RetentionRate float64

	// TextSimilarity is the similarity ratio between the full normalized
	// text of both documents.
	TextSimilarity float64
}

// ComparisonResult is the complete output of one matching pass. The Removed,
// Added and Matched sequences preserve the order of the inputs they were
// derived from.
type ComparisonResult struct {
	Removed []ContentUnit
	Added   []ContentUnit
	Matched []MatchedPair
	Scores  SimilarityScores
}

// ChangeSummary breaks the removed/added counts down into the estimated
// change categories used by the comparison report.
type ChangeSummary struct {
	RemovedCount   int
	AddedCount     int
	Replacements   int
	Insertions     int
	Deletions      int
	StylingChanges int
	TotalChanges   int
}

// Summarize derives change statistics from the removed and added counts.
// Overlapping removals and additions are presumed to be replacements, and
// styling changes are estimated at 30% of the total churn.
func Summarize(removed, added int) ChangeSummary {
	replacements := min(removed, added)
	s := ChangeSummary{
		RemovedCount:   removed,
		AddedCount:     added,
		Replacements:   replacements,
		Insertions:     added - replacements,
		Deletions:      removed - replacements,
		StylingChanges: int(0.3 * float64(removed+added)),
	}
	s.TotalChanges = s.Replacements + s.Insertions + s.Deletions + s.StylingChanges
	return s
}

// HighlightTag distinguishes the two kinds of visual marks a comparison run
// asks a backend to draw.
type HighlightTag int

const (
	// HighlightRemoved marks content present in the old document only.
	// Conventionally rendered red.
	HighlightRemoved HighlightTag = iota
	// HighlightAdded marks content present in the new document only.
	// Conventionally rendered green.
	HighlightAdded
)

// String returns a human-readable name for the tag.
func (t HighlightTag) String() string {
	switch t {
	case HighlightRemoved:
		return "removed"
	case HighlightAdded:
		return "added"
	default:
		return "unknown"
	}
}
