package redline

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/redline/backend"
	"github.com/tsawler/redline/extract"
	"github.com/tsawler/redline/locate"
	"github.com/tsawler/redline/match"
	"github.com/tsawler/redline/model"
)

// highlightOpacity is the fill opacity used for every comparison highlight.
const highlightOpacity = 0.5

// Session runs comparisons against one backend under one validated
// configuration. A Session is reusable across runs but not safe for
// concurrent use.
type Session struct {
	backend  backend.Backend
	cfg      model.Config
	matcher  *match.Matcher
	resolver *locate.Resolver
	logger   zerolog.Logger
	progress ProgressFunc
	fuzzy    bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes the session's diagnostics through logger. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithProgress registers a checkpoint callback for comparison runs.
func WithProgress(fn ProgressFunc) Option {
	return func(s *Session) {
		s.progress = fn
	}
}

// WithoutFuzzyLocate disables the fuzzy word-chunk tier of the geometry
// cascade. Verbatim, paragraph/sentence and line lookup still run.
func WithoutFuzzyLocate() Option {
	return func(s *Session) {
		s.fuzzy = false
	}
}

// NewSession creates a comparison session. The configuration is validated
// here, before any document is opened.
func NewSession(b backend.Backend, cfg model.Config, opts ...Option) (*Session, error) {
	matcher, err := match.New(cfg)
	if err != nil {
		return nil, err
	}
	resolver, err := locate.New(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		backend:  b,
		cfg:      cfg,
		matcher:  matcher,
		resolver: resolver,
		logger:   zerolog.Nop(),
		fuzzy:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Outcome is the complete result of one comparison run.
type Outcome struct {
	// Result is the matcher's classification and metrics.
	Result model.ComparisonResult

	// Summary is the change statistics derived from the classification.
	Summary model.ChangeSummary

	// OldPageCount and NewPageCount are the page counts of the compared
	// documents.
	OldPageCount int
	NewPageCount int

	// HighlightedRemoved and HighlightedAdded count the units that were
	// successfully located and marked on a page. Units whose geometry could
	// not be resolved are skipped, not failed.
	HighlightedRemoved int
	HighlightedAdded   int
}

// Compare opens both documents through the session's backend, compares them,
// and highlights the differences in place. Both documents are closed before
// Compare returns.
//
// A backend failure while opening or extracting aborts the run with a
// *BackendError and no partial result. Per-unit geometry failures during the
// highlight pass are logged and skipped.
func (s *Session) Compare(oldPath, newPath string) (*Outcome, error) {
	oldDoc, err := s.backend.Open(oldPath)
	if err != nil {
		return nil, &BackendError{Stage: "open", Page: -1, Err: err}
	}
	defer oldDoc.Close()

	newDoc, err := s.backend.Open(newPath)
	if err != nil {
		return nil, &BackendError{Stage: "open", Page: -1, Err: err}
	}
	defer newDoc.Close()

	return s.CompareDocuments(oldDoc, newDoc)
}

// CompareDocuments compares two already-open documents and highlights the
// differences in place. The caller keeps ownership of both documents; they
// are not closed.
func (s *Session) CompareDocuments(oldDoc, newDoc backend.Document) (*Outcome, error) {
	s.report(0, "Extracting text from first document")
	oldPages, err := s.extractPages(oldDoc, 0, "Extracting text from first document")
	if err != nil {
		return nil, err
	}

	s.report(20, "Extracting text from second document")
	newPages, err := s.extractPages(newDoc, 20, "Extracting text from second document")
	if err != nil {
		return nil, err
	}

	s.report(40, "Analyzing content for cross-page comparison")
	oldUnits := extract.Units(oldPages, s.cfg)
	newUnits := extract.Units(newPages, s.cfg)
	s.logger.Debug().
		Int("old_units", len(oldUnits)).
		Int("new_units", len(newUnits)).
		Msg("extracted content units")

	s.report(50, "Identifying content differences")
	result := s.matcher.Match(oldUnits, newUnits)

	s.report(60, "Highlighting removed content")
	removedDone := s.highlightUnits(oldDoc, result.Removed, model.HighlightRemoved, 60)

	s.report(75, "Highlighting added content")
	addedDone := s.highlightUnits(newDoc, result.Added, model.HighlightAdded, 75)

	outcome := &Outcome{
		Result:             result,
		Summary:            model.Summarize(len(result.Removed), len(result.Added)),
		OldPageCount:       oldDoc.PageCount(),
		NewPageCount:       newDoc.PageCount(),
		HighlightedRemoved: removedDone,
		HighlightedAdded:   addedDone,
	}

	s.logger.Info().
		Int("removed", len(result.Removed)).
		Int("added", len(result.Added)).
		Int("matched", len(result.Matched)).
		Float64("document_similarity", result.Scores.DocumentSimilarity).
		Msg("comparison complete")

	s.report(100, "Comparison completed successfully")
	return outcome, nil
}

// extractPages pulls the text of every page, reporting per-page progress
// within the 20-point band starting at base.
func (s *Session) extractPages(doc backend.Document, base float64, message string) ([]string, error) {
	total := doc.PageCount()
	pages := make([]string, 0, total)

	for i := 0; i < total; i++ {
		s.reportPage(base+float64(i)/float64(total)*20, message, i+1, total)

		text, err := doc.Text(i)
		if err != nil {
			return nil, &BackendError{Stage: "extract", Page: i, Err: err}
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// highlightUnits locates each unit's original text on its page and marks
// every resolved rectangle. Failures are isolated per unit: a unit whose
// geometry cannot be resolved is logged and skipped, and the run continues.
// Returns the number of units that got at least one mark.
func (s *Session) highlightUnits(doc backend.Document, units []model.ContentUnit, tag model.HighlightTag, base float64) int {
	done := 0
	count := len(units)

	for idx, unit := range units {
		s.reportPage(base+float64(idx)/float64(max(1, count))*15,
			"Highlighting "+tag.String()+" content", unit.Page+1, doc.PageCount())

		if unit.Page < 0 || unit.Page >= doc.PageCount() {
			s.logger.Warn().Int("page", unit.Page).Str("tag", tag.String()).
				Msg("unit page out of range, skipping")
			continue
		}

		page := backend.PageSearcher{Doc: doc, Page: unit.Page}
		rects, err := s.resolver.Locate(page, unit.Original, s.fuzzy)
		if err != nil {
			s.logger.Warn().Err(err).Int("page", unit.Page).Str("tag", tag.String()).
				Msg("geometry lookup failed, skipping unit")
			continue
		}
		if len(rects) == 0 {
			s.logger.Debug().Int("page", unit.Page).Str("tag", tag.String()).
				Msg("unit text not found on page")
			continue
		}

		marked := false
		for _, rect := range rects {
			if err := doc.Highlight(unit.Page, rect, tag, highlightOpacity); err != nil {
				s.logger.Warn().Err(err).Int("page", unit.Page).Str("tag", tag.String()).
					Msg("highlight failed, skipping rectangle")
				continue
			}
			marked = true
		}
		if marked {
			done++
		}
	}
	return done
}

// report fires a non-page-scoped progress checkpoint.
func (s *Session) report(percent float64, message string) {
	if s.progress != nil {
		s.progress(Progress{Percent: percent, Message: message})
	}
}

// reportPage fires a page-scoped progress checkpoint.
func (s *Session) reportPage(percent float64, message string, current, total int) {
	if s.progress != nil {
		s.progress(Progress{Percent: percent, Message: message, CurrentPage: current, TotalPages: total})
	}
}
