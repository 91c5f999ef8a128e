// Copyright © 2026 The diagview authors

package diagnostic

import (
	"strconv"
	"strings"

	"github.com/diagview/diagview/source"
)

// expansionChain returns loc followed by each enclosing macro call
// site, innermost first. The walk is iterative; a pathological
// expansion depth cannot exhaust the goroutine stack.
func (r *Renderer) expansionChain(loc source.Loc) []source.Loc {
	chain := []source.Loc{loc}
	for r.src.IsExpansion(loc) {
		loc = r.src.ExpansionSite(loc)
		if !loc.IsValid() {
			break
		}
		chain = append(chain, loc)
	}
	return chain
}

// writeCaretBlock renders one snippet block per backtrace level,
// outermost macro use first down to the innermost spelling. Backtraces
// deeper than MacroBacktraceLimit print only the head and tail levels
// around a single elision note; the outermost and innermost levels are
// always kept.
func (r *Renderer) writeCaretBlock(ew *errWriter, d Diagnostic, p palette) {
	chain := r.expansionChain(d.Loc)
	depth := len(chain) - 1

	skipFrom, skipTo := -1, -1 // elided window in outermost-first indexing
	if limit := r.opts.MacroBacktraceLimit; limit > 0 && depth > limit {
		if limit < 2 {
			limit = 2
		}
		head := limit / 2
		tail := limit - head
		skipFrom, skipTo = head, len(chain)-tail
	}

	for i := 0; i < len(chain); i++ {
		if i == skipFrom {
			writeSeverity(ew, SeverityNote, p)
			ew.printf("(skipping %d expansions in backtrace; use --macro-backtrace-limit=0 to see all)\n",
				skipTo-skipFrom)
			i = skipTo - 1
			continue
		}
		innermost := i == len(chain)-1
		r.writeSnippet(ew, chain[len(chain)-1-i], d, innermost, p)
	}
}

// writeSnippet emits one backtrace level: its location line, the source
// line in a line-numbered gutter, the caret/underline row, and (at the
// innermost level) the fix-it insertion row and fix-it notes.
func (r *Renderer) writeSnippet(ew *errWriter, loc source.Loc, d Diagnostic, innermost bool, p palette) {
	pos, ok := r.src.Resolve(loc)
	if !ok {
		return
	}
	if r.opts.ShowLocation {
		r.writeLocationLine(ew, pos, rangesIf(innermost, d.Ranges), p)
	}

	line := r.src.LineText(pos)
	if line == "" {
		// Source text unavailable: show the bare gutter, as for spans
		// without source.
		ew.printf("   %s|%s\n", p.boldBlue, p.reset)
		return
	}

	var ranges []colRange
	var fixes []insertion
	if innermost {
		for _, span := range d.Ranges {
			if cr, ok := r.projectSpan(span, pos, len(line)); ok {
				ranges = append(ranges, cr)
			}
		}
		if r.opts.ShowFixits {
			for _, f := range d.Fixes {
				if !f.Insertion() {
					// Removals and replacements act on existing
					// characters: underline them.
					if cr, ok := r.projectSpan(f.Span, pos, len(line)); ok {
						ranges = append(ranges, cr)
					}
					continue
				}
				if cr, ok := r.projectSpan(f.Span, pos, len(line)); ok {
					fixes = append(fixes, insertion{col: cr.begin, text: f.Text})
				}
			}
		}
	}

	expanded, m := expandLine(line, r.opts.tabStop())
	caretLine := buildCaretLine(line, m, ranges, pos.Col)
	fixLine := buildFixItLine(fixes, m)

	num := strconv.Itoa(pos.Line)
	pad := strings.Repeat(" ", len(num))

	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)
	ew.printf(" %s%s |%s  %s\n", p.boldBlue, num, p.reset, expanded)
	if caretLine != "" {
		ew.printf(" %s%s |%s  %s%s%s\n", p.boldBlue, pad, p.reset, p.green, caretLine, p.reset)
	}
	if fixLine != "" {
		ew.printf(" %s%s |%s  %s%s%s\n", p.boldBlue, pad, p.reset, p.green, fixLine, p.reset)
	}

	if innermost && r.opts.ShowFixits {
		r.writeFixItNotes(ew, d.Fixes, pos, line, p)
	}
}

// writeFixItNotes emits "= note:" lines describing removal and
// replacement suggestions, which have no insertion row of their own.
func (r *Renderer) writeFixItNotes(ew *errWriter, fixes []FixIt, pos source.Pos, line string, p palette) {
	for _, f := range fixes {
		if f.Insertion() {
			continue
		}
		covered := ""
		if cr, ok := r.projectSpan(f.Span, pos, len(line)); ok && cr.end > cr.begin {
			covered = line[cr.begin-1 : cr.end-1]
		}
		switch {
		case f.Text != "" && covered != "":
			ew.printf("   %s=%s note: suggested replacement of '%s': '%s'\n", p.boldBlue, p.reset, covered, f.Text)
		case f.Text != "":
			ew.printf("   %s=%s note: suggested replacement: '%s'\n", p.boldBlue, p.reset, f.Text)
		case covered != "":
			ew.printf("   %s=%s note: suggested removal of '%s'\n", p.boldBlue, p.reset, covered)
		}
	}
}

// projectSpan maps a span onto the line at pos, returning its 1-based
// byte columns clipped to that line. Token ranges are normalized to
// character ranges first. Spans resolving to other files or lines are
// dropped.
func (r *Renderer) projectSpan(span source.Span, pos source.Pos, lineLen int) (colRange, bool) {
	if !span.IsValid() {
		return colRange{}, false
	}
	end := span.End
	if span.TokenRange {
		end = r.src.TokenEndLoc(end)
	}
	beginPos, ok := r.src.Resolve(span.Begin)
	if !ok || beginPos.File != pos.File || beginPos.PhysLine > pos.PhysLine {
		return colRange{}, false
	}
	endPos, ok := r.src.Resolve(end)
	if !ok || endPos.File != pos.File || endPos.PhysLine < pos.PhysLine {
		return colRange{}, false
	}
	cr := colRange{begin: 1, end: lineLen + 1}
	if beginPos.PhysLine == pos.PhysLine {
		cr.begin = beginPos.Col
	}
	if endPos.PhysLine == pos.PhysLine {
		cr.end = endPos.Col
	}
	return cr, true
}

func rangesIf(cond bool, ranges []source.Span) []source.Span {
	if cond {
		return ranges
	}
	return nil
}
