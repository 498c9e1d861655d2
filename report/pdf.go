package report

import (
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the report to a single-column A4 PDF at path.
func (r *Report) WritePDF(path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	// Title.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Comparison Results", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// File block: old and new side by side.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(95, 7, r.Old.Name, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, r.New.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(95, 6, fileLine(r.Old), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fileLine(r.New), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, r.Old.Modified.Format("Jan 2, 2006 15:04"), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, r.New.Modified.Format("Jan 2, 2006 15:04"), "", 1, "L", false, 0, "")
	divider(pdf)

	// Change statistics.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Change Statistics", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(60, 6, "Total Changes", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, "Content", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, "Styling", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 32)
	pdf.CellFormat(60, 14, strconv.Itoa(r.Summary.TotalChanges), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(60, 14, strconv.Itoa(r.Summary.Replacements), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 14, strconv.Itoa(r.Summary.StylingChanges), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(60, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 5, "Replacements", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 5, "Styling", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(60, 10, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 10, strconv.Itoa(r.Summary.Insertions), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(60, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 5, "Insertions", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(60, 10, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 10, strconv.Itoa(r.Summary.Deletions), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(60, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 5, "Deletions", "", 1, "L", false, 0, "")
	divider(pdf)

	// Similarity table.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Similarity Analysis", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(55, 8, "Metric", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 8, "Score", "1", 0, "C", true, 0, "")
	pdf.CellFormat(110, 8, "Description", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range r.metricRows() {
		pdf.CellFormat(55, 8, row.Metric, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, row.Score, "1", 0, "C", false, 0, "")
		pdf.CellFormat(110, 8, row.Description, "1", 1, "L", false, 0, "")
	}
	divider(pdf)

	// Legend.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Legend: Change Types Explained", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, section := range legendSections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, section.Title+":", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, item := range section.Items {
			pdf.MultiCell(0, 5, "- "+item, "", "L", false)
			pdf.Ln(1)
		}
		pdf.Ln(2)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write PDF report: %w", err)
	}
	return nil
}

// divider draws the horizontal rule used between report sections.
func divider(pdf *gofpdf.Fpdf) {
	pdf.Ln(4)
	x, y := pdf.GetXY()
	pdf.Line(x, y, x+190, y)
	pdf.Ln(6)
}
