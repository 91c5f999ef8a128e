// Copyright © 2026 The diagview authors

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimBOM(t *testing.T) {
	got, ok := trimBOM([]byte("\xEF\xBB\xBFint x;"))
	assert.True(t, ok)
	assert.Equal(t, []byte("int x;"), got)

	got, ok = trimBOM([]byte("int x;"))
	assert.False(t, ok)
	assert.Equal(t, []byte("int x;"), got)
}

func TestNormalizeCRLF(t *testing.T) {
	got, ok := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	assert.True(t, ok)
	assert.Equal(t, []byte("a\nb\rc\n"), got)

	got, ok = normalizeCRLF([]byte("a\nb"))
	assert.False(t, ok)
	assert.Equal(t, []byte("a\nb"), got)
}

func TestToLineCol(t *testing.T) {
	idx := buildLineIndex([]byte("ab\n\ncd\n"))
	assert.Equal(t, []uint32{2, 3, 6}, idx)

	tests := []struct {
		off       uint32
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1}, // empty line
		{4, 3, 1},
		{5, 3, 2},
		{7, 4, 1}, // offset past the final newline
	}
	for _, tt := range tests {
		line, col := toLineCol(idx, tt.off)
		assert.Equal(t, tt.line, line, "offset %d", tt.off)
		assert.Equal(t, tt.col, col, "offset %d", tt.off)
	}
}

func TestTokenLen(t *testing.T) {
	assert.Equal(t, 5, tokenLen([]byte("value;")))
	assert.Equal(t, 1, tokenLen([]byte(";value")))
	assert.Equal(t, 3, tokenLen([]byte("a_1+")))
	assert.Equal(t, 0, tokenLen(nil))
	// Multibyte identifier runes count in bytes.
	assert.Equal(t, 4, tokenLen([]byte("héx ")))
}
