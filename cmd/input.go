// Copyright © 2026 The diagview authors

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/diagview/diagview/diagnostic"
	"github.com/diagview/diagview/source"
)

// batchFile is the JSON input consumed by render, fixits, and explore:
// a table of source buffers (inline content or disk paths), optional
// macro expansion records, and the diagnostics to render against them.
type batchFile struct {
	Files          []fileJSON          `json:"files"`
	Expansions     []expansionJSON     `json:"expansions,omitempty"`
	LineDirectives []lineDirectiveJSON `json:"line_directives,omitempty"`
	Diagnostics    []diagnosticJSON    `json:"diagnostics"`
}

type fileJSON struct {
	Path    string   `json:"path"`
	Content *string  `json:"content,omitempty"` // nil: read Path from disk
	From    *posJSON `json:"included_from,omitempty"`
}

// posJSON names a file position by path.
type posJSON struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

// locJSON is a position or a reference into the expansion table, for
// locations that live inside a macro expansion.
type locJSON struct {
	posJSON
	Expansion *int `json:"expansion,omitempty"`
	Offset    int  `json:"offset,omitempty"`
}

type expansionJSON struct {
	Spelling locJSON `json:"spelling"`
	Call     locJSON `json:"call"`
	Length   int     `json:"length,omitempty"`
}

type lineDirectiveJSON struct {
	File      string `json:"file"`
	AfterLine int    `json:"after_line"`
	Name      string `json:"name"`
	Line      int    `json:"line"`
}

type spanJSON struct {
	Start      locJSON `json:"start"`
	End        locJSON `json:"end"`
	TokenRange bool    `json:"token_range,omitempty"`
}

type fixJSON struct {
	Start locJSON `json:"start"`
	End   locJSON `json:"end"`
	Text  string  `json:"text"`
}

type diagnosticJSON struct {
	Severity     string     `json:"severity"`
	Message      string     `json:"message"`
	Location     *locJSON   `json:"location,omitempty"`
	Ranges       []spanJSON `json:"ranges,omitempty"`
	Fixes        []fixJSON  `json:"fixes,omitempty"`
	Supplemental bool       `json:"supplemental,omitempty"`
}

// batch is a loaded input: the source set plus decoded diagnostics.
type batch struct {
	files        *source.Files
	diags        []diagnostic.Diagnostic
	supplemental []bool
}

// loadBatch reads and decodes a batch file, registering every source
// buffer and expansion record.
func loadBatch(path string) (*batch, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // caller-specified input file
	if err != nil {
		return nil, err
	}
	var bf batchFile
	if err := json.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return buildBatch(&bf)
}

func buildBatch(bf *batchFile) (*batch, error) {
	b := &batch{files: source.NewFiles()}

	for _, f := range bf.Files {
		from := source.NoLoc
		if f.From != nil {
			loc, err := b.resolvePos(*f.From)
			if err != nil {
				return nil, fmt.Errorf("file %s: %w", f.Path, err)
			}
			from = loc
		}
		if f.Content == nil {
			if from.IsValid() {
				return nil, fmt.Errorf("file %s: included_from requires inline content", f.Path)
			}
			if _, err := b.files.LoadFile(f.Path); err != nil {
				return nil, err
			}
			continue
		}
		b.files.AddIncludedFile(f.Path, []byte(*f.Content), from)
	}

	var expansionBases []source.Loc
	for i, e := range bf.Expansions {
		spelling, err := b.resolveLoc(e.Spelling, expansionBases)
		if err != nil {
			return nil, fmt.Errorf("expansion %d: %w", i, err)
		}
		call, err := b.resolveLoc(e.Call, expansionBases)
		if err != nil {
			return nil, fmt.Errorf("expansion %d: %w", i, err)
		}
		expansionBases = append(expansionBases, b.files.AddExpansion(spelling, call, e.Length))
	}

	for _, d := range bf.LineDirectives {
		id, ok := b.files.Lookup(d.File)
		if !ok {
			return nil, fmt.Errorf("line directive: unknown file %s", d.File)
		}
		b.files.AddLineDirective(id, d.AfterLine, d.Name, d.Line)
	}

	for i, dj := range bf.Diagnostics {
		d, err := b.buildDiagnostic(dj, expansionBases)
		if err != nil {
			return nil, fmt.Errorf("diagnostic %d: %w", i, err)
		}
		b.diags = append(b.diags, d)
		b.supplemental = append(b.supplemental, dj.Supplemental)
	}
	return b, nil
}

func (b *batch) buildDiagnostic(dj diagnosticJSON, bases []source.Loc) (diagnostic.Diagnostic, error) {
	d := diagnostic.Diagnostic{
		Severity: parseSeverity(dj.Severity),
		Message:  dj.Message,
	}
	if dj.Location != nil {
		loc, err := b.resolveLoc(*dj.Location, bases)
		if err != nil {
			return d, err
		}
		d.Loc = loc
	}
	for _, s := range dj.Ranges {
		begin, err := b.resolveLoc(s.Start, bases)
		if err != nil {
			return d, err
		}
		end, err := b.resolveLoc(s.End, bases)
		if err != nil {
			return d, err
		}
		span := source.CharSpan(begin, end)
		if s.TokenRange {
			span = source.TokenSpan(begin, end)
		}
		d.Ranges = append(d.Ranges, span)
	}
	for _, f := range dj.Fixes {
		begin, err := b.resolveLoc(f.Start, bases)
		if err != nil {
			return d, err
		}
		end, err := b.resolveLoc(f.End, bases)
		if err != nil {
			return d, err
		}
		d.Fixes = append(d.Fixes, diagnostic.FixIt{Span: source.CharSpan(begin, end), Text: f.Text})
	}
	return d, nil
}

func (b *batch) resolvePos(p posJSON) (source.Loc, error) {
	id, ok := b.files.Lookup(p.File)
	if !ok {
		return source.NoLoc, fmt.Errorf("unknown file %s", p.File)
	}
	loc := b.files.LocAt(id, p.Line, p.Col)
	if !loc.IsValid() {
		return source.NoLoc, fmt.Errorf("position %s:%d:%d outside file", p.File, p.Line, p.Col)
	}
	return loc, nil
}

func (b *batch) resolveLoc(l locJSON, bases []source.Loc) (source.Loc, error) {
	if l.Expansion != nil {
		i := *l.Expansion
		if i < 0 || i >= len(bases) {
			return source.NoLoc, fmt.Errorf("expansion index %d out of range", i)
		}
		return bases[i] + source.Loc(l.Offset), nil
	}
	return b.resolvePos(l.posJSON)
}

func parseSeverity(s string) diagnostic.Severity {
	switch s {
	case "note":
		return diagnostic.SeverityNote
	case "remark":
		return diagnostic.SeverityRemark
	case "warning":
		return diagnostic.SeverityWarning
	case "fatal", "fatal error":
		return diagnostic.SeverityFatal
	default:
		return diagnostic.SeverityError
	}
}
