// Copyright © 2026 The diagview authors

// Package source manages source buffers and opaque locations for
// diagnostic rendering. A Files set owns file contents, line indexes,
// include relationships, and macro expansion records, and resolves
// locations back to concrete file/line/column positions. It plays the
// role of a compiler's source manager, scoped to what rendering needs.
package source

import (
	"os"
	"path/filepath"
	"sort"
)

// lineDirective records a #line-style override: physical lines strictly
// after physLine present as name starting at line.
type lineDirective struct {
	physLine int
	name     string
	line     int
}

type file struct {
	id           FileID
	path         string
	content      []byte
	lineIdx      []uint32 // byte offsets of each '\n'
	base         Loc
	includedFrom Loc
	directives   []lineDirective
}

// expansion is a macro expansion record. Locations inside it forward to
// the spelling buffer for their characters and to the call site for
// their position in the expansion backtrace.
type expansion struct {
	base     Loc
	length   uint32
	spelling Loc
	call     Loc
}

// Files is a set of registered source buffers and expansion records
// sharing one location address space. Register everything first; after
// that all methods are read-only and safe for concurrent use.
type Files struct {
	files      []file
	expansions []expansion
	index      map[string]FileID
	next       Loc
}

// NewFiles returns an empty file set.
func NewFiles() *Files {
	return &Files{index: make(map[string]FileID), next: 1}
}

// AddFile registers a top-level buffer under path and returns its ID.
func (fs *Files) AddFile(path string, content []byte) FileID {
	return fs.add(path, content, NoLoc)
}

// AddIncludedFile registers a buffer that was textually included from
// the location from in an already registered file.
func (fs *Files) AddIncludedFile(path string, content []byte, from Loc) FileID {
	return fs.add(path, content, from)
}

// LoadFile reads path from disk, normalizes BOM and CRLF line endings,
// and registers the result as a top-level file.
func (fs *Files) LoadFile(path string) (FileID, error) {
	content, err := os.ReadFile(path) //nolint:gosec // caller-specified source path
	if err != nil {
		return NoFile, err
	}
	content, _ = trimBOM(content)
	content, _ = normalizeCRLF(content)
	return fs.AddFile(path, content), nil
}

func (fs *Files) add(path string, content []byte, from Loc) FileID {
	id := FileID(len(fs.files))
	f := file{
		id:           id,
		path:         normalizePath(path),
		content:      content,
		lineIdx:      buildLineIndex(content),
		base:         fs.next,
		includedFrom: from,
	}
	fs.files = append(fs.files, f)
	fs.index[f.path] = id
	fs.next += Loc(len(content)) + 1 // +1 keeps even empty files addressable
	return id
}

// AddExpansion registers a macro expansion of length bytes whose
// characters are spelled at spelling and which was produced by the macro
// use at call. The returned Loc addresses the first byte of the
// expansion; interior positions are Loc+offset.
func (fs *Files) AddExpansion(spelling, call Loc, length int) Loc {
	if length < 1 {
		length = 1
	}
	e := expansion{
		base:     fs.next,
		length:   uint32(length), // #nosec G115 -- length checked positive
		spelling: spelling,
		call:     call,
	}
	fs.expansions = append(fs.expansions, e)
	fs.next += Loc(length)
	return e.base
}

// AddLineDirective records a #line-style override for id: physical lines
// after physLine present under name, numbered from line.
func (fs *Files) AddLineDirective(id FileID, physLine int, name string, line int) {
	if int(id) < 0 || int(id) >= len(fs.files) {
		return
	}
	f := &fs.files[id]
	f.directives = append(f.directives, lineDirective{physLine: physLine, name: name, line: line})
	sort.Slice(f.directives, func(i, j int) bool {
		return f.directives[i].physLine < f.directives[j].physLine
	})
}

// Path returns the registered path of a file.
func (fs *Files) Path(id FileID) string {
	if int(id) < 0 || int(id) >= len(fs.files) {
		return ""
	}
	return fs.files[id].path
}

// Lookup returns the ID of a previously registered path.
func (fs *Files) Lookup(path string) (FileID, bool) {
	id, ok := fs.index[normalizePath(path)]
	return id, ok
}

// LocAt returns the location of a 1-based line and column in a file, or
// NoLoc if the position is outside the file.
func (fs *Files) LocAt(id FileID, line, col int) Loc {
	if int(id) < 0 || int(id) >= len(fs.files) || line < 1 || col < 1 {
		return NoLoc
	}
	f := &fs.files[id]
	start, end, ok := f.lineBounds(line)
	if !ok {
		return NoLoc
	}
	off := start + uint32(col-1) // #nosec G115 -- col checked positive
	if off > end {
		return NoLoc
	}
	return f.base + Loc(off)
}

// fileAt returns the file containing a location, if any.
func (fs *Files) fileAt(loc Loc) (*file, uint32, bool) {
	if !loc.IsValid() {
		return nil, 0, false
	}
	i := sort.Search(len(fs.files), func(i int) bool {
		return fs.files[i].base > loc
	}) - 1
	if i < 0 {
		return nil, 0, false
	}
	f := &fs.files[i]
	off := uint32(loc - f.base)
	if off > uint32(len(f.content)) {
		return nil, 0, false
	}
	return f, off, true
}

// expansionAt returns the expansion record containing a location, if any.
func (fs *Files) expansionAt(loc Loc) (*expansion, uint32, bool) {
	if !loc.IsValid() {
		return nil, 0, false
	}
	i := sort.Search(len(fs.expansions), func(i int) bool {
		return fs.expansions[i].base > loc
	}) - 1
	if i < 0 {
		return nil, 0, false
	}
	e := &fs.expansions[i]
	off := uint32(loc - e.base)
	if off >= e.length {
		return nil, 0, false
	}
	return e, off, true
}

// IsExpansion reports whether loc addresses a macro expansion record
// rather than a file buffer.
func (fs *Files) IsExpansion(loc Loc) bool {
	_, _, ok := fs.expansionAt(loc)
	return ok
}

// SpellingLoc returns the file location of the literal characters behind
// loc, walking through any chain of expansion records.
func (fs *Files) SpellingLoc(loc Loc) Loc {
	for {
		e, off, ok := fs.expansionAt(loc)
		if !ok {
			return loc
		}
		loc = e.spelling + Loc(off)
	}
}

// ExpansionSite returns the location of the macro use that produced loc,
// or NoLoc when loc is not inside an expansion. The result may itself be
// inside an enclosing expansion.
func (fs *Files) ExpansionSite(loc Loc) Loc {
	e, _, ok := fs.expansionAt(loc)
	if !ok {
		return NoLoc
	}
	return e.call
}

// IncludeSite returns the location a file was included from, or NoLoc
// for top-level files.
func (fs *Files) IncludeSite(id FileID) Loc {
	if int(id) < 0 || int(id) >= len(fs.files) {
		return NoLoc
	}
	return fs.files[id].includedFrom
}

// Resolve maps a location to a concrete position. Locations inside macro
// expansions resolve at their spelling site. The presented name and line
// honor any recorded line directives.
func (fs *Files) Resolve(loc Loc) (Pos, bool) {
	f, off, ok := fs.fileAt(fs.SpellingLoc(loc))
	if !ok {
		return Pos{File: NoFile}, false
	}
	line, col := toLineCol(f.lineIdx, off)
	pos := Pos{File: f.id, Name: f.path, Line: line, Col: col, PhysLine: line}
	for i := len(f.directives) - 1; i >= 0; i-- {
		d := f.directives[i]
		if line > d.physLine {
			pos.Name = d.name
			pos.Line = d.line + (line - d.physLine - 1)
			break
		}
	}
	return pos, true
}

// LineText returns the literal text of the line containing pos, without
// its trailing newline. It returns "" when the line is unavailable.
func (fs *Files) LineText(pos Pos) string {
	if int(pos.File) < 0 || int(pos.File) >= len(fs.files) {
		return ""
	}
	f := &fs.files[pos.File]
	start, end, ok := f.lineBounds(pos.PhysLine)
	if !ok {
		return ""
	}
	return string(f.content[start:end])
}

// TokenEndLoc returns the location one past the token starting at loc.
// Identifier-like tokens run to their end; any other character is a
// single-rune token. Used to normalize token ranges to character ranges.
func (fs *Files) TokenEndLoc(loc Loc) Loc {
	spell := fs.SpellingLoc(loc)
	f, off, ok := fs.fileAt(spell)
	if !ok {
		return loc
	}
	n := tokenLen(f.content[off:])
	return loc + Loc(n)
}

// lineBounds returns the content offsets [start, end) of a 1-based
// physical line.
func (f *file) lineBounds(line int) (start, end uint32, ok bool) {
	if line < 1 || line > len(f.lineIdx)+1 {
		return 0, 0, false
	}
	if line > 1 {
		start = f.lineIdx[line-2] + 1
	}
	if line <= len(f.lineIdx) {
		end = f.lineIdx[line-1]
	} else {
		end = uint32(len(f.content))
	}
	if start > uint32(len(f.content)) {
		return 0, 0, false
	}
	return start, end, true
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
