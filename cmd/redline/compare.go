package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/redline"
	"github.com/tsawler/redline/annotate"
	"github.com/tsawler/redline/backend"
	"github.com/tsawler/redline/backend/plaintext"
	"github.com/tsawler/redline/backend/scanned"
	"github.com/tsawler/redline/model"
	"github.com/tsawler/redline/report"
)

// overlayScale is the raster density of overlay PNGs, in pixels per page
// unit.
const overlayScale = 2.0

var (
	configPath  string
	threshold   float64
	minLength   int
	chunkSize   int
	basic       bool
	noFuzzy     bool
	backendName string
	ocrLanguage string
	reportPDF   string
	reportHTML  string
	overlayDir  string
	showTotals  bool
)

var compareCmd = &cobra.Command{
	Use:   "compare OLD NEW",
	Short: "Compare two versions of a document",
	Long: `Compares the document at OLD against the version at NEW.

With the default text backend, a document is a UTF-8 text file with pages
separated by form feeds. The scanned backend instead treats OLD and NEW as
directories of page images and recovers their text through OCR (requires a
build with -tags ocr).`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	flags := compareCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.Float64Var(&threshold, "threshold", model.DefaultConfig().ExactMatchThreshold, "exact-match similarity threshold (0,1]")
	flags.IntVar(&minLength, "min-length", model.DefaultConfig().MinMeaningfulTextLength, "minimum meaningful paragraph length in runes")
	flags.IntVar(&chunkSize, "chunk-size", model.DefaultConfig().FuzzyChunkSize, "fuzzy search chunk size in words")
	flags.BoolVar(&basic, "basic", false, "basic normalization only (no lowercasing or substitutions)")
	flags.BoolVar(&noFuzzy, "no-fuzzy", false, "disable the fuzzy chunk tier of text location")
	flags.StringVar(&backendName, "backend", "text", "document backend: text or scanned")
	flags.StringVar(&ocrLanguage, "lang", "", "OCR language for the scanned backend (e.g. eng+fra)")
	flags.StringVar(&reportPDF, "report-pdf", "", "write a PDF comparison report to this path")
	flags.StringVar(&reportHTML, "report-html", "", "write an HTML comparison report to this path")
	flags.StringVar(&overlayDir, "overlay-dir", "", "write highlighted page PNGs into this directory (text backend only)")
	flags.BoolVar(&showTotals, "totals", true, "print the change summary")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	oldPath, newPath := args[0], args[1]

	cfg := model.DefaultConfig()
	cfg.ExactMatchThreshold = threshold
	cfg.MinMeaningfulTextLength = minLength
	cfg.FuzzyChunkSize = chunkSize
	cfg.EnhancedPreprocessing = !basic
	fuzzy := !noFuzzy

	if configPath != "" {
		fc, err := loadFileConfig(configPath)
		if err != nil {
			return err
		}
		fc.apply(&cfg, &fuzzy)
		applyFlagOverrides(cmd, &cfg, &fuzzy)
		if fc.Report.PDF != "" && reportPDF == "" {
			reportPDF = fc.Report.PDF
		}
		if fc.Report.HTML != "" && reportHTML == "" {
			reportHTML = fc.Report.HTML
		}
		if fc.OverlayDir != "" && overlayDir == "" {
			overlayDir = fc.OverlayDir
		}
	}

	b, err := selectBackend()
	if err != nil {
		return err
	}

	oldDoc, err := b.Open(oldPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", oldPath, err)
	}
	defer oldDoc.Close()

	newDoc, err := b.Open(newPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", newPath, err)
	}
	defer newDoc.Close()

	opts := []redline.Option{
		redline.WithLogger(logger),
		redline.WithProgress(printProgress),
	}
	if !fuzzy {
		opts = append(opts, redline.WithoutFuzzyLocate())
	}
	session, err := redline.NewSession(b, cfg, opts...)
	if err != nil {
		return err
	}

	outcome, err := session.CompareDocuments(oldDoc, newDoc)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr)

	printOutcome(cmd, outcome)

	if reportPDF != "" || reportHTML != "" {
		rep := &report.Report{
			Old:     fileInfo(oldPath, outcome.OldPageCount),
			New:     fileInfo(newPath, outcome.NewPageCount),
			Result:  &outcome.Result,
			Summary: outcome.Summary,
		}
		if reportPDF != "" {
			if err := rep.WritePDF(reportPDF); err != nil {
				return err
			}
			logger.Info().Str("path", reportPDF).Msg("wrote PDF report")
		}
		if reportHTML != "" {
			if err := rep.SaveHTML(reportHTML); err != nil {
				return err
			}
			logger.Info().Str("path", reportHTML).Msg("wrote HTML report")
		}
	}

	if overlayDir != "" {
		if err := writeOverlays(oldDoc, newDoc); err != nil {
			return err
		}
	}
	return nil
}

// applyFlagOverrides re-applies any flags the user set explicitly, so the
// command line wins over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *model.Config, fuzzy *bool) {
	if cmd.Flags().Changed("threshold") {
		cfg.ExactMatchThreshold = threshold
	}
	if cmd.Flags().Changed("min-length") {
		cfg.MinMeaningfulTextLength = minLength
	}
	if cmd.Flags().Changed("chunk-size") {
		cfg.FuzzyChunkSize = chunkSize
	}
	if cmd.Flags().Changed("basic") {
		cfg.EnhancedPreprocessing = !basic
	}
	if cmd.Flags().Changed("no-fuzzy") {
		*fuzzy = !noFuzzy
	}
}

func selectBackend() (backend.Backend, error) {
	switch backendName {
	case "text":
		return plaintext.New(), nil
	case "scanned":
		var opts []scanned.Option
		if ocrLanguage != "" {
			opts = append(opts, scanned.WithLanguage(ocrLanguage))
		}
		return scanned.New(opts...), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want text or scanned)", backendName)
	}
}

func printProgress(p redline.Progress) {
	if p.TotalPages > 0 {
		fmt.Fprintf(os.Stderr, "\r[%3.0f%%] %s (page %d/%d)        ",
			p.Percent, p.Message, p.CurrentPage, p.TotalPages)
		return
	}
	fmt.Fprintf(os.Stderr, "\r[%3.0f%%] %s        ", p.Percent, p.Message)
}

func printOutcome(cmd *cobra.Command, outcome *redline.Outcome) {
	s := outcome.Result.Scores
	cmd.Printf("Matched:  %d\n", len(outcome.Result.Matched))
	cmd.Printf("Removed:  %d (%d highlighted)\n", len(outcome.Result.Removed), outcome.HighlightedRemoved)
	cmd.Printf("Added:    %d (%d highlighted)\n", len(outcome.Result.Added), outcome.HighlightedAdded)
	cmd.Println()
	cmd.Printf("Document similarity:      %6.1f%%\n", s.DocumentSimilarity)
	cmd.Printf("Content retention:        %6.1f%%\n", s.RetentionRate)
	cmd.Printf("Text similarity:          %6.1f%%\n", s.TextSimilarity)
	cmd.Printf("Content block similarity: %6.1f%%\n", s.AvgContentSimilarity)

	if showTotals {
		sum := outcome.Summary
		cmd.Println()
		cmd.Printf("Total changes: %d (%d replacements, %d insertions, %d deletions, %d styling)\n",
			sum.TotalChanges, sum.Replacements, sum.Insertions, sum.Deletions, sum.StylingChanges)
	}
}

// fileInfo gathers the report header data for one compared file.
func fileInfo(path string, pages int) report.Info {
	info := report.Info{Name: filepath.Base(path), Pages: pages}
	if st, err := os.Stat(path); err == nil {
		info.SizeKB = st.Size() / 1024
		info.Modified = st.ModTime()
	}
	return info
}

// writeOverlays renders every page of both documents as a PNG with its
// recorded highlights composited on top. Only the text backend records
// highlights it can render.
func writeOverlays(oldDoc, newDoc backend.Document) error {
	if err := os.MkdirAll(overlayDir, 0o755); err != nil {
		return fmt.Errorf("create overlay directory: %w", err)
	}

	docs := []struct {
		label string
		doc   backend.Document
	}{
		{"old", oldDoc},
		{"new", newDoc},
	}
	for _, d := range docs {
		pd, ok := d.doc.(*plaintext.Document)
		if !ok {
			return fmt.Errorf("overlay rendering requires the text backend")
		}
		if err := renderDocument(pd, d.label); err != nil {
			return err
		}
	}
	return nil
}

func renderDocument(doc *plaintext.Document, label string) error {
	for page := 0; page < doc.PageCount(); page++ {
		width, height, err := doc.PageSize(page)
		if err != nil {
			return err
		}
		if width == 0 {
			logger.Debug().Str("doc", label).Int("page", page).Msg("skipping empty page")
			continue
		}

		overlay, err := annotate.NewBlankPage(width, height, overlayScale)
		if err != nil {
			return fmt.Errorf("page %d overlay: %w", page, err)
		}
		for _, h := range doc.Highlights() {
			if h.Page != page {
				continue
			}
			if err := overlay.Highlight(h.Rect, h.Tag, h.Opacity); err != nil {
				return fmt.Errorf("page %d overlay: %w", page, err)
			}
		}

		path := filepath.Join(overlayDir, fmt.Sprintf("%s-page-%d.png", label, page+1))
		if err := overlay.SavePNG(path); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("wrote page overlay")
	}
	return nil
}
