// Copyright © 2026 The diagview authors

// Package diagnostic renders compiler diagnostics as annotated source
// snippets: a severity-tagged message, the offending line with a
// caret/underline row, fix-it suggestions, and a backtrace through
// macro expansions and file inclusions. It is independent of any
// particular front end; locations are opaque handles resolved through
// the Source interface (typically a *source.Files).
package diagnostic

import (
	"github.com/diagview/diagview/source"
)

// Source resolves opaque locations for rendering. It is read-only and
// borrowed for the duration of each Emit call; *source.Files satisfies
// it.
type Source interface {
	// Resolve maps a location to a concrete position, false if unknown.
	Resolve(loc source.Loc) (source.Pos, bool)
	// LineText returns the literal text of the line holding pos, "" if
	// unavailable.
	LineText(pos source.Pos) string
	// SpellingLoc returns the file location of the characters behind loc.
	SpellingLoc(loc source.Loc) source.Loc
	// ExpansionSite returns the macro use that produced loc, NoLoc for
	// plain file locations.
	ExpansionSite(loc source.Loc) source.Loc
	// IsExpansion reports whether loc lies inside a macro expansion.
	IsExpansion(loc source.Loc) bool
	// IncludeSite returns the location a file was included from, NoLoc
	// for top-level files.
	IncludeSite(id source.FileID) source.Loc
	// TokenEndLoc returns the location one past the token starting at
	// loc, used to normalize token ranges.
	TokenEndLoc(loc source.Loc) source.Loc
}

// Diagnostic is one diagnostic to render. All fields are borrowed; the
// renderer never mutates them.
type Diagnostic struct {
	Loc      source.Loc
	Severity Severity
	Message  string
	Ranges   []source.Span
	Fixes    []FixIt
}

// FixIt is a suggested edit attached to a diagnostic: replace the
// characters covered by Span with Text. A zero-width span is an
// insertion; empty text is a removal. Spans of different fix-its on the
// same diagnostic must not overlap.
type FixIt struct {
	Span source.Span
	Text string
}

// Insert suggests inserting text at a location.
func Insert(at source.Loc, text string) FixIt {
	return FixIt{Span: source.PointSpan(at), Text: text}
}

// Remove suggests deleting the characters covered by span.
func Remove(span source.Span) FixIt {
	return FixIt{Span: span}
}

// Replace suggests replacing the characters covered by span with text.
func Replace(span source.Span, text string) FixIt {
	return FixIt{Span: span, Text: text}
}

// Insertion reports whether the fix-it inserts text without removing
// any.
func (f FixIt) Insertion() bool {
	return f.Span.Empty() && f.Text != ""
}

// State is the session memory carried between diagnostics on one
// Renderer: it suppresses repeated include stacks and redundant caret
// context across consecutive emits. The zero value means no previous
// diagnostic.
type State struct {
	// LastLoc is the location of the previous diagnostic, if known.
	LastLoc source.Loc
	// LastIncludeLoc is the include-stack root last printed.
	LastIncludeLoc source.Loc
	// LastSeverity is the severity of the previous diagnostic.
	LastSeverity Severity
}
