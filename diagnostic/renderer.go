// Copyright © 2026 The diagview authors

package diagnostic

import (
	"bufio"
	"fmt"
	"io"

	"github.com/diagview/diagview/source"
)

// Renderer formats diagnostics as annotated source snippets with macro
// and include backtraces. It carries session memory across Emit calls
// to suppress repeated include stacks and redundant caret context, so
// one Renderer serves one diagnostic stream and must not be shared
// between goroutines without external locking.
type Renderer struct {
	src   Source
	opts  Options
	state State
}

// New returns a Renderer with fresh session memory.
func New(src Source, opts Options) *Renderer {
	return &Renderer{src: src, opts: opts}
}

// Resume returns a Renderer continuing from prev, as when rendering
// resumes mid-stream after another consumer emitted the earlier
// diagnostics.
func Resume(src Source, opts Options, prev State) *Renderer {
	return &Renderer{src: src, opts: opts, state: prev}
}

// State returns the current session memory.
func (r *Renderer) State() State {
	return r.state
}

// Emit renders one complete diagnostic to w: include stack, severity
// header with the word-wrapped message, backtrace snippet blocks, and
// machine-readable fix-it lines when enabled. Degraded input (invalid
// location, unavailable source text, malformed ranges) never fails;
// the only error returned is a write failure on w.
//
// supplemental hints that d extends the previous diagnostic (a paired
// note) and its caret context may be elided when it would repeat what
// was just printed.
func (r *Renderer) Emit(w io.Writer, d Diagnostic, supplemental bool) error {
	p := choosePalette(r.opts.Color, w)
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	var pos source.Pos
	located := false
	if d.Loc.IsValid() {
		pos, located = r.src.Resolve(d.Loc)
	}

	if located {
		r.writeIncludeStack(ew, pos)
	}

	writeSeverity(ew, d.Severity, p)
	writeMessage(ew, d.Severity, d.Message, len(d.Severity.String())+2, r.opts.WrapColumn, p)

	switch {
	case located && r.opts.ShowCarets && !r.suppressCaret(d, supplemental):
		r.writeCaretBlock(ew, d, p)
	case located && r.opts.ShowLocation:
		r.writeLocationLine(ew, pos, d.Ranges, p)
	}

	if r.opts.ShowParseableFixits {
		r.writeParseableFixits(ew, d.Fixes)
	}

	if located {
		r.state.LastLoc = d.Loc
	}
	r.state.LastSeverity = d.Severity

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// suppressCaret decides whether a supplemental note may skip its
// snippet because the previous diagnostic already displayed the same
// context.
func (r *Renderer) suppressCaret(d Diagnostic, supplemental bool) bool {
	return supplemental &&
		d.Severity == SeverityNote &&
		r.state.LastLoc.IsValid() &&
		d.Loc == r.state.LastLoc
}

// writeIncludeStack prints one "In file included from ..." line per
// inclusion frame leading to pos, outermost file first, unless the same
// stack was already printed for the previous diagnostic.
func (r *Renderer) writeIncludeStack(ew *errWriter, pos source.Pos) {
	site := r.src.IncludeSite(pos.File)
	if site == r.state.LastIncludeLoc {
		return
	}
	r.state.LastIncludeLoc = site
	r.writeIncludeChain(ew, site)
}

// writeIncludeChain recurses to the outermost frame before printing, so
// frames appear root first. Recursion depth equals the real inclusion
// depth, which the front end already bounds.
func (r *Renderer) writeIncludeChain(ew *errWriter, site source.Loc) {
	if !site.IsValid() {
		return
	}
	pos, ok := r.src.Resolve(site)
	if !ok {
		return
	}
	r.writeIncludeChain(ew, r.src.IncludeSite(pos.File))
	ew.printf("In file included from %s:%d:\n", pos.Name, pos.Line)
}

// writeLocationLine prints the position header of a snippet:
//
//	--> file:line:col {l:c-l:c}...
//
// The column obeys ShowColumn; the trailing range list appears only
// with ShowSourceRanges, using the same coordinates as the machine
// fix-it format.
func (r *Renderer) writeLocationLine(ew *errWriter, pos source.Pos, ranges []source.Span, p palette) {
	loc := pos.Name
	if pos.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, pos.Line)
		if r.opts.ShowColumn && pos.Col > 0 {
			loc = fmt.Sprintf("%s:%d", loc, pos.Col)
		}
	}
	ew.printf("  %s-->%s %s", p.boldBlue, p.reset, loc)
	if r.opts.ShowSourceRanges {
		for _, span := range ranges {
			if b, e, ok := resolveSpanEnds(r.src, span); ok {
				ew.printf(" {%d:%d-%d:%d}", b.Line, b.Col, e.Line, e.Col)
			}
		}
	}
	ew.print("\n")
}

// resolveSpanEnds resolves both endpoints of a span after normalizing
// token ranges, requiring them to land in one file.
func resolveSpanEnds(src Source, span source.Span) (begin, end source.Pos, ok bool) {
	if !span.IsValid() {
		return begin, end, false
	}
	endLoc := span.End
	if span.TokenRange {
		endLoc = src.TokenEndLoc(endLoc)
	}
	begin, ok = src.Resolve(span.Begin)
	if !ok {
		return begin, end, false
	}
	end, ok = src.Resolve(endLoc)
	if !ok || end.File != begin.File {
		return begin, end, false
	}
	return begin, end, true
}

// errWriter wraps a writer and captures the first error, short-
// circuiting subsequent writes. This avoids checking every fmt.Fprintf
// return value.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}
