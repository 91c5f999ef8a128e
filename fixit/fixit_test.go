// Copyright © 2026 The diagview authors

package fixit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineString(t *testing.T) {
	l := Line{File: "main.c", StartLine: 3, StartCol: 5, EndLine: 3, EndCol: 5, Text: ";"}
	assert.Equal(t, `fix-it:"main.c":{3:5-3:5}:";"`, l.String())

	l = Line{File: "main.c", StartLine: 2, StartCol: 1, EndLine: 2, EndCol: 4}
	assert.Equal(t, `fix-it:"main.c":{2:1-2:4}:""`, l.String())
}

func TestLineKinds(t *testing.T) {
	ins := Line{File: "a.c", StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 2, Text: "x"}
	assert.True(t, ins.Insertion())
	assert.False(t, ins.Removal())

	rem := Line{File: "a.c", StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 5}
	assert.False(t, rem.Insertion())
	assert.True(t, rem.Removal())

	repl := Line{File: "a.c", StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 5, Text: "y"}
	assert.False(t, repl.Insertion())
	assert.False(t, repl.Removal())
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, Quote("plain"))
	assert.Equal(t, `"a \"b\" c"`, Quote(`a "b" c`))
	assert.Equal(t, `"p\\q"`, Quote(`p\q`))
	assert.Equal(t, `""`, Quote(""))
}

func TestUnquote(t *testing.T) {
	got, err := Unquote(`"a \"b\" \\c"`)
	require.NoError(t, err)
	assert.Equal(t, `a "b" \c`, got)

	_, err = Unquote(`"open`)
	assert.Error(t, err)
	_, err = Unquote(`"bad\"`)
	assert.Error(t, err)
	_, err = Unquote(`x`)
	assert.Error(t, err)
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "x", `a"b`, `a\b`, `\"`, "spaces and : braces {1:2}"} {
		got, err := Unquote(Quote(s))
		require.NoError(t, err, "input %q", s)
		assert.Equal(t, s, got, "input %q", s)
	}
}

func TestParse(t *testing.T) {
	l, err := Parse(`fix-it:"foo bar.c":{12:3-14:7}:"int x = 0;"`)
	require.NoError(t, err)
	assert.Equal(t, Line{
		File:      "foo bar.c",
		StartLine: 12,
		StartCol:  3,
		EndLine:   14,
		EndCol:    7,
		Text:      "int x = 0;",
	}, l)
}

func TestParseEscapes(t *testing.T) {
	l, err := Parse(`fix-it:"dir\\file.c":{1:1-1:1}:"say \"hi\""`)
	require.NoError(t, err)
	assert.Equal(t, `dir\file.c`, l.File)
	assert.Equal(t, `say "hi"`, l.Text)
}

func TestParseRejectsMalformed(t *testing.T) {
	bad := []string{
		``,
		`fix-it:`,
		`fix-it:"a.c":{1:2-3}:"x"`,
		`fix-it:"a.c":{1:2-3:4}:`,
		`fix-it:a.c:{1:2-3:4}:"x"`,
		`fix-it:"a.c":{1:2-3:4}:"x" junk`,
	}
	for _, s := range bad {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseRoundTrip(t *testing.T) {
	orig := Line{File: `we"ird.c`, StartLine: 9, StartCol: 1, EndLine: 9, EndCol: 4, Text: `a\b`}
	got, err := Parse(orig.String())
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestParseAll(t *testing.T) {
	in := strings.Join([]string{
		`main.c:3:5: error: expected ';'`,
		`  3 |  int x = 1`,
		`    |           ^`,
		`fix-it:"main.c":{3:10-3:10}:";"`,
		`main.c:5:1: warning: unused`,
		`fix-it:"main.c":{5:1-5:7}:""`,
	}, "\n")
	lines, err := ParseAll(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Insertion())
	assert.True(t, lines[1].Removal())
	assert.Equal(t, 3, lines[0].StartLine)
}

func TestParseAllRejectsMalformedPrefixed(t *testing.T) {
	in := "note: something\nfix-it:\"a.c\":{oops}:\"x\"\n"
	_, err := ParseAll(strings.NewReader(in))
	assert.Error(t, err)
}
