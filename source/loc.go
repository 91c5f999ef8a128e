// Copyright © 2026 The diagview authors

package source

import "fmt"

// Loc is an opaque handle to a position in some registered source buffer,
// possibly inside a macro expansion. The zero value is the invalid
// location.
type Loc uint32

// NoLoc is the invalid location.
const NoLoc Loc = 0

// IsValid reports whether the location refers to a registered buffer.
func (l Loc) IsValid() bool { return l != NoLoc }

// FileID identifies a registered source file within a Files set.
type FileID int32

// NoFile is the FileID held by an invalid Pos.
const NoFile FileID = -1

// Pos is a resolved source position. Line and Col are 1-based and reflect
// any line-directive overrides recorded for the file; PhysLine is the
// real line in the underlying buffer and is what LineText reads.
type Pos struct {
	File     FileID
	Name     string
	Line     int
	Col      int
	PhysLine int
}

// IsValid reports whether the position was successfully resolved.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "<invalid>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Col)
}

// Span is a pair of locations. When TokenRange is set, End denotes the
// start of the final token rather than the exact final character and the
// span must be normalized before column math is done on it.
type Span struct {
	Begin      Loc
	End        Loc
	TokenRange bool
}

// CharSpan returns a character span covering [begin, end).
func CharSpan(begin, end Loc) Span {
	return Span{Begin: begin, End: end}
}

// TokenSpan returns a token span whose End marks the start of the last
// token covered.
func TokenSpan(begin, end Loc) Span {
	return Span{Begin: begin, End: end, TokenRange: true}
}

// PointSpan returns the zero-width span at loc.
func PointSpan(loc Loc) Span {
	return Span{Begin: loc, End: loc}
}

// IsValid reports whether both endpoints are valid locations.
func (s Span) IsValid() bool { return s.Begin.IsValid() && s.End.IsValid() }

// Empty reports whether the span covers no characters.
func (s Span) Empty() bool { return s.Begin == s.End }
