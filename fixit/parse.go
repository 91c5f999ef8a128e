// Copyright © 2026 The diagview authors

package fixit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	parsec "github.com/prataprc/goparsec"
)

// newLineParser builds the fix-it line grammar:
//
//	line := "fix-it:" string ":{" int ":" int "-" int ":" int "}:" string
func newLineParser() parsec.Parser {
	mark := parsec.Atom("fix-it:", "MARK")
	colon := parsec.Atom(":", "COLON")
	dash := parsec.Atom("-", "DASH")
	openB := parsec.Atom("{", "OPENB")
	closeB := parsec.Atom("}", "CLOSEB")
	str := parsec.Token(`"(?:[^"\\]|\\.)*"`, "STRING")
	num := parsec.Token(`[0-9]+`, "NUM")
	return parsec.And(nil,
		mark, str, colon,
		openB, num, colon, num, dash, num, colon, num, closeB,
		colon, str)
}

// Parse parses a single canonical fix-it line. Trailing content after
// the line is an error.
func Parse(s string) (Line, error) {
	sc := parsec.NewScanner([]byte(s))
	node, sc := newLineParser()(sc)
	if node == nil {
		return Line{}, fmt.Errorf("fixit: malformed line: %q", s)
	}
	_, sc = sc.SkipWS()
	if !sc.Endof() {
		return Line{}, fmt.Errorf("fixit: trailing junk after fix-it line: %q", s)
	}
	return lineFromNodes(node.([]parsec.ParsecNode))
}

// ParseAll reads mixed renderer output and returns every fix-it line in
// order, ignoring all other lines. A malformed line that carries the
// fix-it prefix is an error rather than silently dropped.
func ParseAll(r io.Reader) ([]Line, error) {
	var out []Line
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		text := sc.Text()
		if !strings.HasPrefix(text, "fix-it:") {
			continue
		}
		l, err := Parse(text)
		if err != nil {
			return out, err
		}
		out = append(out, l)
	}
	if err := sc.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// lineFromNodes decodes the 14 terminals matched by newLineParser.
func lineFromNodes(nodes []parsec.ParsecNode) (Line, error) {
	termValue := func(i int) string {
		return nodes[i].(*parsec.Terminal).GetValue()
	}
	file, err := Unquote(termValue(1))
	if err != nil {
		return Line{}, err
	}
	text, err := Unquote(termValue(13))
	if err != nil {
		return Line{}, err
	}
	var coords [4]int
	for i, idx := range []int{4, 6, 8, 10} {
		n, err := strconv.Atoi(termValue(idx))
		if err != nil {
			return Line{}, fmt.Errorf("fixit: bad coordinate %q: %w", termValue(idx), err)
		}
		coords[i] = n
	}
	return Line{
		File:      file,
		StartLine: coords[0],
		StartCol:  coords[1],
		EndLine:   coords[2],
		EndCol:    coords[3],
		Text:      text,
	}, nil
}
