// Package report renders the comparison summary as a PDF or HTML document:
// the compared files side by side, the change statistics, the four similarity
// metrics, and a legend explaining the change categories.
package report

import (
	"fmt"
	"time"

	"github.com/tsawler/redline/model"
)

// Info describes one of the compared files.
type Info struct {
	Name     string
	Pages    int
	SizeKB   int64
	Modified time.Time
}

// Report carries everything the renderers need.
type Report struct {
	Old     Info
	New     Info
	Result  *model.ComparisonResult
	Summary model.ChangeSummary
}

// metricRow is one line of the similarity table.
type metricRow struct {
	Metric      string
	Score       string
	Description string
}

// metricRows builds the similarity table in its fixed display order.
func (r *Report) metricRows() []metricRow {
	s := r.Result.Scores
	return []metricRow{
		{"Document Similarity", formatScore(s.DocumentSimilarity), "Overall similarity between the documents"},
		{"Content Retention", formatScore(s.RetentionRate), "Percentage of original content retained"},
		{"Text Similarity", formatScore(s.TextSimilarity), "Similarity based on text content"},
		{"Content Block Similarity", formatScore(s.AvgContentSimilarity), "Average similarity of matched content blocks"},
	}
}

// formatScore renders a percentage rounded to one decimal place.
func formatScore(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// fileLine renders the page/size line of the file block.
func fileLine(info Info) string {
	return fmt.Sprintf("%d pages (%d KB)", info.Pages, info.SizeKB)
}

// legendSection is one titled block of the report legend.
type legendSection struct {
	Title string
	Items []string
}

// legendSections is the fixed explanatory text appended to every report.
var legendSections = []legendSection{
	{
		Title: "Content Changes",
		Items: []string{
			"Replacements: text that appears to have been modified; removed from the original document and replaced with new content in the updated document.",
			"Insertions: new content added to the document that was not present in the original version, highlighted in green in the new document.",
			"Deletions: content that existed in the original document but has been removed in the new version, highlighted in red in the old document.",
		},
	},
	{
		Title: "Styling Changes",
		Items: []string{
			"Changes to formatting, layout, fonts, colors or spacing that do not affect the actual content. Estimated from the volume of content churn.",
		},
	},
	{
		Title: "How Similarity Scores Are Calculated",
		Items: []string{
			"Document Similarity: matched content blocks divided by the total unique blocks across both documents.",
			"Content Retention: the percentage of original content blocks that were not removed.",
			"Text Similarity: a sequence-matcher ratio over the full text of both documents.",
			"Content Block Similarity: the average similarity of matched content block pairs.",
		},
	},
}
