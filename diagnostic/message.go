// Copyright © 2026 The diagview authors

package diagnostic

import (
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// FprintSeverity writes the colorized severity label ("error:",
// "warning:", ...) followed by a single space. It needs no renderer
// state, so callers without locations can reuse the exact label
// formatting.
func FprintSeverity(w io.Writer, sev Severity, colors bool) error {
	ew := &errWriter{w: w}
	writeSeverity(ew, sev, paletteIf(colors))
	return ew.err
}

// FprintMessage writes a diagnostic message starting at currentColumn,
// greedily word-wrapped so no line extends past wrapColumn (0 disables
// wrapping; a single word longer than the width is emitted unbroken).
// Continuation lines are indented to align under the message start. The
// message is bold when colors are enabled and the color state is always
// reset before returning, even for an empty message.
func FprintMessage(w io.Writer, sev Severity, msg string, currentColumn, wrapColumn int, colors bool) error {
	ew := &errWriter{w: w}
	writeMessage(ew, sev, msg, currentColumn, wrapColumn, paletteIf(colors))
	return ew.err
}

func paletteIf(colors bool) palette {
	if colors {
		return ansiPalette
	}
	return noPalette
}

func writeSeverity(ew *errWriter, sev Severity, p palette) {
	ew.printf("%s%s:%s ", labelColor(p, sev), sev, p.reset)
}

func writeMessage(ew *errWriter, sev Severity, msg string, currentColumn, wrapColumn int, p palette) {
	ew.print(p.bold)
	lines := wrapMessage(msg, currentColumn, wrapColumn)
	indent := strings.Repeat(" ", currentColumn)
	for i, line := range lines {
		if i > 0 {
			ew.print(indent)
		}
		ew.print(line)
		ew.print("\n")
	}
	ew.print(p.reset)
}

// wrapMessage breaks msg on whitespace so that no line, offset by
// currentColumn, extends past wrapColumn. The wrap width collapses to
// "no wrapping" when the starting column leaves no room.
func wrapMessage(msg string, currentColumn, wrapColumn int) []string {
	if wrapColumn <= 0 || wrapColumn <= currentColumn {
		return []string{msg}
	}
	wrapped := wordwrap.String(msg, wrapColumn-currentColumn)
	return strings.Split(wrapped, "\n")
}
