// Copyright © 2026 The diagview authors

package diagnostic

import (
	"github.com/diagview/diagview/fixit"
)

// ParseableFixits serializes the fix-its of one diagnostic into their
// machine-format records: insertions become a zero-width range carrying
// the inserted text, removals their range with empty text. The result
// is independent of color and wrap settings and byte-stable for
// identical input; tool consumers parse it with the fixit package.
// Suggestions whose locations cannot be resolved are dropped, matching
// the degrade-never-fail policy.
func ParseableFixits(src Source, fixes []FixIt) []fixit.Line {
	var out []fixit.Line
	for _, f := range fixes {
		begin, end, ok := resolveSpanEnds(src, f.Span)
		if !ok {
			continue
		}
		out = append(out, fixit.Line{
			File:      begin.Name,
			StartLine: begin.Line,
			StartCol:  begin.Col,
			EndLine:   end.Line,
			EndCol:    end.Col,
			Text:      f.Text,
		})
	}
	return out
}

// writeParseableFixits appends the machine-readable lines after a
// rendered diagnostic.
func (r *Renderer) writeParseableFixits(ew *errWriter, fixes []FixIt) {
	for _, line := range ParseableFixits(r.src, fixes) {
		ew.print(line.String())
		ew.print("\n")
	}
}
