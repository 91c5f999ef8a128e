// Copyright © 2026 The diagview authors

package diagnostic

// Options control how diagnostics are laid out. The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	// Color controls ANSI color output.
	Color ColorMode

	// WrapColumn is the column messages are word-wrapped at. 0 disables
	// wrapping.
	WrapColumn int

	// TabStop is the tab stop width used when expanding tabs in source
	// lines. Values < 1 are treated as DefaultTabStop.
	TabStop int

	// MacroBacktraceLimit bounds how many expansion levels print their
	// own snippet; the middle of deeper backtraces is elided with a
	// note. 0 means unlimited. The innermost and outermost levels are
	// always kept, so effective limits below 2 behave as 2.
	MacroBacktraceLimit int

	// ShowLocation includes the "--> file:line:col" line. ShowColumn
	// controls the ":col" part of it.
	ShowLocation bool
	ShowColumn   bool

	// ShowCarets enables source snippets with caret/underline rows.
	ShowCarets bool

	// ShowFixits enables fix-it rendering in the human-readable output.
	ShowFixits bool

	// ShowSourceRanges appends the machine-oriented {l:c-l:c} range
	// list to the location line.
	ShowSourceRanges bool

	// ShowParseableFixits emits one machine-readable fix-it line per
	// suggestion after the diagnostic.
	ShowParseableFixits bool
}

// DefaultTabStop is the tab stop width used when Options.TabStop is
// unset.
const DefaultTabStop = 8

// DefaultOptions returns the options used by the CLI when no flags
// override them.
func DefaultOptions() Options {
	return Options{
		Color:        ColorAuto,
		TabStop:      DefaultTabStop,
		ShowLocation: true,
		ShowColumn:   true,
		ShowCarets:   true,
		ShowFixits:   true,
	}
}

func (o Options) tabStop() int {
	if o.TabStop < 1 {
		return DefaultTabStop
	}
	return o.TabStop
}
