// Copyright © 2026 The diagview authors

package diagnostic

import (
	"io"
	"os"
)

// ColorMode controls when ANSI color codes are used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // detect based on terminal and NO_COLOR
	ColorAlways                  // always use colors
	ColorNever                   // never use colors
)

// palette holds the ANSI escape sequences for diagnostic output.
type palette struct {
	bold     string
	red      string
	green    string
	magenta  string
	cyan     string
	boldRed  string
	boldBlue string
	reset    string
}

var ansiPalette = palette{
	bold:     "\033[1m",
	red:      "\033[31m",
	green:    "\033[32m",
	magenta:  "\033[35m",
	cyan:     "\033[36m",
	boldRed:  "\033[1;31m",
	boldBlue: "\033[1;34m",
	reset:    "\033[0m",
}

var noPalette = palette{}

// choosePalette selects the appropriate color palette based on the mode
// and the output writer.
func choosePalette(mode ColorMode, w io.Writer) palette {
	switch mode {
	case ColorAlways:
		return ansiPalette
	case ColorNever:
		return noPalette
	default: // ColorAuto
		if os.Getenv("NO_COLOR") != "" {
			return noPalette
		}
		if !isTerminal(fileFromWriter(w)) {
			return noPalette
		}
		return ansiPalette
	}
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// fileFromWriter attempts to extract an *os.File from a writer for
// terminal detection. Returns nil if the writer is not backed by a file.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
