// Copyright © 2026 The diagview authors

package source

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// trimBOM strips a leading UTF-8 byte order mark.
func trimBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

// normalizeCRLF rewrites \r\n pairs to \n, leaving lone \r alone.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte{'\r', '\n'}) {
		return content, false
	}
	return bytes.ReplaceAll(content, []byte{'\r', '\n'}, []byte{'\n'}), true
}

// buildLineIndex returns the byte offset of every '\n' in content.
func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) // #nosec G115 -- buffer sizes fit uint32
		}
	}
	return out
}

// toLineCol converts a byte offset into 1-based line and column using a
// newline index. Columns count bytes, matching how diagnostics are
// reported by the front ends this package serves.
func toLineCol(lineIdx []uint32, off uint32) (line, col int) {
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		return 1, int(off) + 1
	}
	return lo + 1, int(off-lineIdx[lo-1])
}

// tokenLen measures the token starting at the head of b: a run of
// identifier characters, or a single rune for anything else.
func tokenLen(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	r, size := utf8.DecodeRune(b)
	if !isIdentRune(r) {
		return size
	}
	n := 0
	for n < len(b) {
		r, size := utf8.DecodeRune(b[n:])
		if !isIdentRune(r) {
			break
		}
		n += size
	}
	return n
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
