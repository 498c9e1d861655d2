// Package redline compares two versions of a paginated document and reports
// what was removed, added or retained, with similarity metrics and in-place
// highlights.
//
// Basic usage:
//
//	outcome, err := redline.Compare(plaintext.New(), "old.txt", "new.txt")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Printf("%d removed, %d added\n",
//	    len(outcome.Result.Removed), len(outcome.Result.Added))
//
// With options:
//
//	session, err := redline.NewSession(plaintext.New(), model.DefaultConfig(),
//	    redline.WithLogger(logger),
//	    redline.WithProgress(func(p redline.Progress) {
//	        fmt.Printf("%3.0f%% %s\n", p.Percent, p.Message)
//	    }))
//
// Documents are served by a backend (see the backend package); the core only
// ever sees page text, search rectangles and highlight calls, so any paginated
// format with a backend implementation can be compared.
package redline

import (
	"github.com/tsawler/redline/backend"
	"github.com/tsawler/redline/model"
)

// Compare runs a one-shot comparison of the documents at oldPath and newPath
// with the default configuration. For repeated runs, custom configuration or
// progress reporting, create a Session.
func Compare(b backend.Backend, oldPath, newPath string, opts ...Option) (*Outcome, error) {
	session, err := NewSession(b, model.DefaultConfig(), opts...)
	if err != nil {
		return nil, err
	}
	return session.Compare(oldPath, newPath)
}
